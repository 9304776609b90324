package services

import (
	"math"
	"strings"

	"interview-coach/internal/models"
)

type ScorerService interface {
	Score(transcript string) models.ScoreCard
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

const (
	clarityCap       = 8.5
	shortAnswerWords = 20
)

// Score implements ScorerService. It is a pure function: the same transcript
// always produces the same card, and every field lands in [0, 10].
func (s *scorerService) Score(transcript string) models.ScoreCard {
	words := countWords(transcript)
	lower := strings.ToLower(transcript)

	hasExamples := strings.Contains(lower, "example") ||
		strings.Contains(lower, "instance") ||
		strings.Contains(lower, "time when")
	hasNumbers := strings.ContainsAny(transcript, "0123456789")

	clarity := math.Min(clarityCap, 5+float64(words)/20)
	structure := 6.5
	if hasExamples {
		structure = 8.0
	}
	content := 7.0
	if hasNumbers {
		content = 8.5
	}

	// Short-answer penalty overrides the formulas above.
	if words < shortAnswerWords {
		clarity, structure, content = 5.5, 5.0, 5.5
	}

	// Overall is the mean of the unrounded sub-scores; each field is then
	// rounded independently.
	overall := (clarity + structure + content) / 3

	return models.ScoreCard{
		Clarity:   round1(clarity),
		Structure: round1(structure),
		Content:   round1(content),
		Overall:   round1(overall),
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
