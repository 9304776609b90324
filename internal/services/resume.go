package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"interview-coach/internal/models"
)

// ErrResumeTooShort is returned when the résumé text is missing or below the
// minimum length; handlers map it to a validation error response.
var ErrResumeTooShort = errors.New("resume text too short")

type ResumeAnalyzerService interface {
	// Analyze extracts a profile from the résumé text and returns it together
	// with the interview question list for the résumé flow.
	Analyze(resumeText string) (*models.ResumeProfile, []string, error)
}

const minResumeLength = 50

// skillKeywords is matched in this order; extracted skills keep keyword-list
// order, not the order they appear in the résumé. Note that a résumé
// containing "javascript" also matches "java".
var skillKeywords = []string{
	"javascript", "python", "java", "react", "node",
	"sql", "css", "html", "git", "docker",
}

var (
	fallbackSkills    = []string{"JavaScript", "React", "Node.js", "Python", "SQL", "Git"}
	fallbackProjects  = []string{"E-commerce Website", "Task Management App", "Data Dashboard"}
	mentionedProjects = []string{"Project mentioned in resume", "Web Application", "Database System"}
	fixedStrengths    = []string{"Problem-solving", "Team collaboration", "Fast learner", "Attention to detail"}
)

// resumeQuestions is static regardless of résumé content.
var resumeQuestions = []string{
	"Tell me about your E-commerce Website project. What technologies did you use?",
	"How did you implement the shopping cart functionality in your E-commerce project?",
	"Describe the architecture of your Task Management App",
	"What challenges did you face while building the Data Dashboard?",
	"How did you ensure data security in your E-commerce Website?",
	"Tell me about your experience working with React and Node.js",
	"How do you approach debugging issues in your applications?",
	"Describe a time when you had to optimize performance in one of your projects",
	"What testing strategies did you implement in your projects?",
	"How do you handle state management in React applications?",
}

var experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*(years?|yr)`)

type resumeAnalyzerService struct{}

func NewResumeAnalyzerService() ResumeAnalyzerService {
	return &resumeAnalyzerService{}
}

// Analyze implements ResumeAnalyzerService.
func (r *resumeAnalyzerService) Analyze(resumeText string) (*models.ResumeProfile, []string, error) {
	if len(resumeText) < minResumeLength {
		return nil, nil, ErrResumeTooShort
	}

	lower := strings.ToLower(resumeText)

	var skills []string
	for _, keyword := range skillKeywords {
		if strings.Contains(lower, keyword) {
			skills = append(skills, capitalize(keyword))
		}
	}
	if len(skills) == 0 {
		skills = fallbackSkills
	}

	profile := &models.ResumeProfile{
		Skills:          skills,
		ExperienceYears: extractExperience(resumeText),
		KeyProjects:     fallbackProjects,
		Education:       extractEducation(lower),
		// No extraction logic exists for strengths; the fixed list is an
		// intentional stub.
		Strengths: fixedStrengths,
	}

	if strings.Contains(lower, "project") {
		profile.KeyProjects = mentionedProjects
	}

	return profile, resumeQuestions, nil
}

func extractExperience(resumeText string) string {
	match := experiencePattern.FindStringSubmatch(resumeText)
	if match == nil {
		return "Fresher"
	}

	label := fmt.Sprintf("%s year", match[1])
	if n, err := strconv.Atoi(match[1]); err == nil && n > 1 {
		label += "s"
	}
	return label
}

func extractEducation(lower string) string {
	if strings.Contains(lower, "master") {
		return "Master's Degree"
	}
	if strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate") {
		return "PhD"
	}
	return "Bachelor's Degree"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
