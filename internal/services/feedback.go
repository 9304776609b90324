package services

import (
	"fmt"
	"strings"

	"interview-coach/internal/models"
)

type FeedbackService interface {
	Compose(transcript string, scores models.ScoreCard) (english, urdu string)
}

type feedbackService struct {
	translator TranslatorService
}

func NewFeedbackService(translator TranslatorService) FeedbackService {
	return &feedbackService{translator: translator}
}

const (
	detailedAnswerWords = 30

	strengthDetailed   = "You provided a detailed response with good depth"
	strengthExamples   = "Great use of specific examples to support your points"
	strengthClarity    = "Clear and articulate communication"
	strengthFiller     = "You maintained professionalism in your response"
	improvementExpand  = "Expand your answer with more specific details and examples"
	improvementStar    = "Use the STAR method (Situation, Task, Action, Result) to structure your response with concrete examples"
	improvementDetails = "Include more relevant details that directly address the question and demonstrate your expertise"
	improvementFiller  = "Consider adding measurable achievements or outcomes to strengthen your answer"
)

const feedbackTemplate = `**What You Did Well:**
- %s
- %s

**Areas to Improve:**
- %s
- %s

**Sample Ideal Answer:**
I have %s experience in this area. For example, in my previous role, I successfully handled a similar situation where I [specific action], which resulted in [measurable outcome]. This experience taught me [key learning], and I'm confident I can bring this expertise to your team.`

// Compose implements FeedbackService. The strengths and improvements lists are
// built by evaluating predicates in fixed order, padded with fillers to at
// least two entries, and the first two of each fill the template. The Urdu
// text is derived from the English text by literal phrase substitution.
func (f *feedbackService) Compose(transcript string, scores models.ScoreCard) (string, string) {
	words := countWords(transcript)
	lower := strings.ToLower(transcript)

	// Unlike scoring, feedback does not treat "time when" as an example cue.
	hasExamples := strings.Contains(lower, "example") || strings.Contains(lower, "instance")

	var strengths []string
	if words > detailedAnswerWords {
		strengths = append(strengths, strengthDetailed)
	}
	if hasExamples {
		strengths = append(strengths, strengthExamples)
	}
	if scores.Clarity > 7 {
		strengths = append(strengths, strengthClarity)
	}

	var improvements []string
	if words < detailedAnswerWords {
		improvements = append(improvements, improvementExpand)
	}
	if !hasExamples {
		improvements = append(improvements, improvementStar)
	}
	if scores.Content < 7 {
		improvements = append(improvements, improvementDetails)
	}

	for len(strengths) < 2 {
		strengths = append(strengths, strengthFiller)
	}
	for len(improvements) < 2 {
		improvements = append(improvements, improvementFiller)
	}

	adjective := "solid"
	if words > detailedAnswerWords {
		adjective = "extensive"
	}

	english := fmt.Sprintf(feedbackTemplate,
		strengths[0], strengths[1],
		improvements[0], improvements[1],
		adjective,
	)

	return english, f.translator.Translate(english)
}
