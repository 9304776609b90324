package services

import "strings"

// TranslatorService renders the secondary-language feedback. This is not
// translation: it is an ordered list of literal phrase substitutions covering
// the phrases the feedback template can emit. Anything outside that list
// passes through untouched.
type TranslatorService interface {
	Translate(text string) string
}

type substitution struct {
	find    string
	replace string
	// limit is the number of occurrences to replace; -1 means all.
	limit int
}

// urduSubstitutions is applied left-to-right, each rule exactly once, never
// recursively. The three section headers replace only their first occurrence.
var urduSubstitutions = []substitution{
	{"What You Did Well:", "Aap ne achha kiya:", 1},
	{"Areas to Improve:", "Behtar karne ke liye:", 1},
	{"Sample Ideal Answer:", "Mukhtalif Jawab:", 1},
	{"You provided a detailed response", "Aap ne tafsili jawab diya", -1},
	{"Great use of specific examples", "Bahut achhi misalen di", -1},
	{"Clear and articulate communication", "Saaf aur wazeh guftagu", -1},
	{"Expand your answer", "Apne jawab ko zyada tafsil se bayaan karein", -1},
	{"Use the STAR method", "STAR method استعمال karein", -1},
	{"Include more relevant details", "Zyada mutalliq tafsilat shamil karein", -1},
	{"maintained professionalism", "professionalism ka khyal rakha", -1},
	{"Consider adding measurable achievements", "Qaabil-e-tahseen kamyabiyan shamil karein", -1},
	{"I have", "Mere paas", -1},
	{"experience in this area", "is maidaan mein tajurba hai", -1},
	{"For example", "Misal ke taur par", -1},
	{"in my previous role", "apni pichli job mein", -1},
	{"This experience taught me", "Is tajurbe ne mujhe sikhaya", -1},
	{"I'm confident", "Mujhe yakeen hai", -1},
}

type translatorService struct {
	rules []substitution
}

func NewTranslatorService() TranslatorService {
	return &translatorService{rules: urduSubstitutions}
}

// Translate implements TranslatorService.
func (t *translatorService) Translate(text string) string {
	out := text
	for _, sub := range t.rules {
		out = strings.Replace(out, sub.find, sub.replace, sub.limit)
	}
	return out
}
