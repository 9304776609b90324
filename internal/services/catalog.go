package services

import "strings"

type CatalogService interface {
	SelectQuestions(jobTitle string) []string
	DefaultQuestions() []string
}

type roleEntry struct {
	key       string
	questions []string
}

// roleCatalog is declared in match-precedence order: when a job title contains
// more than one role keyword, the first entry wins.
var roleCatalog = []roleEntry{
	{
		key: "software engineer",
		questions: []string{
			"Tell me about your experience with software development and programming languages",
			"Describe a challenging bug you encountered and how you resolved it",
			"How do you approach code reviews and ensure code quality?",
			"What's your experience with version control systems like Git?",
			"Explain the difference between object-oriented and functional programming",
			"How do you stay updated with new technologies and programming trends?",
			"Describe a time when you had to optimize application performance",
			"What testing methodologies are you familiar with?",
			"How do you handle technical debt in a project?",
			"Tell me about a project where you had to learn a new technology quickly",
		},
	},
	{
		key: "data analyst",
		questions: []string{
			"How do you approach data cleaning and preprocessing?",
			"Tell me about your experience with SQL and database queries",
			"Describe a time when you found insights from data that impacted business decisions",
			"What data visualization tools are you proficient in?",
			"How do you handle missing or inconsistent data in large datasets?",
			"Explain your process for creating meaningful KPIs and metrics",
			"Tell me about a complex data analysis project you've completed",
			"How do you ensure data accuracy and integrity in your reports?",
			"What statistical methods do you commonly use in your analysis?",
			"Describe your experience with Excel, Python, or R for data analysis",
		},
	},
	{
		key: "customer service",
		questions: []string{
			"Tell me about a time you dealt with a difficult customer and how you resolved it",
			"How do you handle multiple customer inquiries simultaneously?",
			"Describe your approach to maintaining professionalism under pressure",
			"What strategies do you use to understand customer needs?",
			"Tell me about a time you went above and beyond for a customer",
			"How do you handle situations when you don't know the answer to a customer's question?",
			"Describe your experience with CRM systems or help desk software",
			"How do you measure customer satisfaction?",
			"Tell me about a time you received negative feedback and how you responded",
			"What does excellent customer service mean to you?",
		},
	},
	{
		key: "digital marketing",
		questions: []string{
			"Tell me about your experience with social media marketing campaigns",
			"How do you measure the success of a digital marketing campaign?",
			"Describe your experience with SEO and content marketing",
			"What analytics tools do you use to track campaign performance?",
			"Tell me about a successful email marketing campaign you've managed",
			"How do you stay updated with digital marketing trends?",
			"Describe your experience with paid advertising (Google Ads, Facebook Ads)",
			"How do you approach creating content for different target audiences?",
			"Tell me about a time when a marketing campaign didn't perform as expected",
			"What's your experience with marketing automation tools?",
		},
	},
}

var defaultQuestions = []string{
	"Tell me about yourself and your professional background",
	"What are your greatest strengths and how do they apply to this role?",
	"Describe a challenging situation you faced at work and how you handled it",
	"Where do you see yourself in 5 years?",
	"Why are you interested in this position?",
	"What is your greatest professional achievement?",
	"How do you handle stress and pressure in the workplace?",
	"Describe a time when you had to work with a difficult team member",
	"What motivates you in your work?",
	"Why should we hire you for this position?",
}

type catalogService struct {
	roles    []roleEntry
	defaults []string
}

func NewCatalogService() CatalogService {
	return &catalogService{
		roles:    roleCatalog,
		defaults: defaultQuestions,
	}
}

// SelectQuestions implements CatalogService.
func (s *catalogService) SelectQuestions(jobTitle string) []string {
	key := strings.ToLower(jobTitle)

	for _, role := range s.roles {
		if strings.Contains(key, role.key) {
			return role.questions
		}
	}

	return s.defaults
}

// DefaultQuestions implements CatalogService.
func (s *catalogService) DefaultQuestions() []string {
	return s.defaults
}
