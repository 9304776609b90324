package models

// ScoreCard holds the four answer sub-scores. Every field is in [0, 10] and
// rounded to one decimal place; Overall is the independently rounded mean of
// the other three.
type ScoreCard struct {
	Clarity   float64 `json:"clarity"`
	Structure float64 `json:"structure"`
	Content   float64 `json:"content"`
	Overall   float64 `json:"overall"`
}

// ResumeProfile is the set of attributes extracted (or fallback-filled) from a
// résumé. Field names match the existing client contract.
type ResumeProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears string   `json:"experience_years"`
	KeyProjects     []string `json:"key_projects"`
	Education       string   `json:"education"`
	Strengths       []string `json:"strengths"`
}

type GenerateQuestionsRequest struct {
	JobTitle string `json:"jobTitle"`
	// Experience is accepted for client compatibility but does not influence
	// question selection.
	Experience string `json:"experience"`
}

type GenerateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resumeText"`
	// JobTitle is accepted for client compatibility but unused by extraction.
	JobTitle string `json:"jobTitle"`
}

type AnalyzeResumeResponse struct {
	ResumeData *ResumeProfile `json:"resumeData"`
	Questions  []string       `json:"questions"`
}

type AnalyzeAnswerRequest struct {
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
}

type AnalyzeAnswerResponse struct {
	Success         bool      `json:"success"`
	Scores          ScoreCard `json:"scores"`
	FeedbackEnglish string    `json:"feedbackEnglish"`
	FeedbackUrdu    string    `json:"feedbackUrdu"`
}
