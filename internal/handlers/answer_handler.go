package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type AnswerHandler struct {
	scorer   services.ScorerService
	feedback services.FeedbackService
	delay    time.Duration
}

func NewAnswerHandler(
	scorer services.ScorerService,
	feedback services.FeedbackService,
	delay time.Duration,
) *AnswerHandler {
	return &AnswerHandler{
		scorer:   scorer,
		feedback: feedback,
		delay:    delay,
	}
}

// HandleAnalyzeAnswer handles POST /api/analyze.
func (h *AnswerHandler) HandleAnalyzeAnswer(c *fiber.Ctx) error {
	var req models.AnalyzeAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" || req.Transcript == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Question and transcript required",
		})
	}

	log.Printf("🎤 Analyzing answer: %d chars\n", len(req.Transcript))

	sleepFor(c.Context(), h.delay)

	scores := h.scorer.Score(req.Transcript)
	feedbackEnglish, feedbackUrdu := h.feedback.Compose(req.Transcript, scores)

	log.Printf("📊 Scores: clarity=%.1f structure=%.1f content=%.1f overall=%.1f\n",
		scores.Clarity, scores.Structure, scores.Content, scores.Overall)

	return c.JSON(models.AnalyzeAnswerResponse{
		Success:         true,
		Scores:          scores,
		FeedbackEnglish: feedbackEnglish,
		FeedbackUrdu:    feedbackUrdu,
	})
}
