package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatWords(word string, n int) string {
	return strings.TrimSpace(strings.Repeat(word+" ", n))
}

func TestScoreShortAnswerOverride(t *testing.T) {
	scorer := NewScorerService()

	// 19 words trips the short-answer penalty regardless of content.
	scores := scorer.Score(repeatWords("word", 19))

	assert.Equal(t, 5.5, scores.Clarity)
	assert.Equal(t, 5.0, scores.Structure)
	assert.Equal(t, 5.5, scores.Content)
	assert.Equal(t, 5.3, scores.Overall)
}

func TestScoreLongAnswerWithExamplesAndNumbers(t *testing.T) {
	scorer := NewScorerService()

	// 100 words: 97 filler + "for example 42".
	transcript := repeatWords("alpha", 97) + " for example 42"
	scores := scorer.Score(transcript)

	assert.Equal(t, 8.5, scores.Clarity, "clarity capped at 8.5")
	assert.Equal(t, 8.0, scores.Structure)
	assert.Equal(t, 8.5, scores.Content)
	assert.Equal(t, 8.3, scores.Overall)
}

func TestScorePlainMidLengthAnswer(t *testing.T) {
	scorer := NewScorerService()

	// 20 words, no examples, no digits.
	scores := scorer.Score(repeatWords("alpha", 20))

	assert.Equal(t, 6.0, scores.Clarity)
	assert.Equal(t, 6.5, scores.Structure)
	assert.Equal(t, 7.0, scores.Content)
	assert.Equal(t, 6.5, scores.Overall)
}

func TestScoreRoundingHalfAwayFromZero(t *testing.T) {
	scorer := NewScorerService()

	// 25 words: clarity is 6.25 before rounding, overall is 6.5833...
	scores := scorer.Score(repeatWords("alpha", 25))

	assert.Equal(t, 6.3, scores.Clarity)
	assert.Equal(t, 6.6, scores.Overall)
}

func TestScoreExampleCues(t *testing.T) {
	scorer := NewScorerService()

	tests := []struct {
		name string
		cue  string
	}{
		{"example", "example"},
		{"instance", "for Instance"},
		{"time when", "there was a time when"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := repeatWords("alpha", 30) + " " + tt.cue
			scores := scorer.Score(transcript)
			assert.Equal(t, 8.0, scores.Structure)
		})
	}
}

func TestScoreFieldsAlwaysInRange(t *testing.T) {
	scorer := NewScorerService()

	transcripts := []string{
		"",
		"short",
		repeatWords("word", 19),
		repeatWords("word", 500) + " example 123",
		"I once handled 3 escalations in a single shift, for instance during a product launch with lots of overlapping deadlines and pressure",
	}

	for _, transcript := range transcripts {
		scores := scorer.Score(transcript)
		for name, v := range map[string]float64{
			"clarity":   scores.Clarity,
			"structure": scores.Structure,
			"content":   scores.Content,
			"overall":   scores.Overall,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s for %q", name, transcript)
			assert.LessOrEqual(t, v, 10.0, "%s for %q", name, transcript)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := NewScorerService()

	transcript := repeatWords("beta", 40) + " for example 7"
	assert.Equal(t, scorer.Score(transcript), scorer.Score(transcript))
}
