package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type QuestionsHandler struct {
	catalog services.CatalogService
	delay   time.Duration
}

func NewQuestionsHandler(catalog services.CatalogService, delay time.Duration) *QuestionsHandler {
	return &QuestionsHandler{
		catalog: catalog,
		delay:   delay,
	}
}

// HandleGenerateQuestions handles POST /api/generate-questions. An empty job
// title is a user input error; anything going wrong after validation degrades
// to the default question list rather than failing the request.
func (h *QuestionsHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.JobTitle) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobTitle is required",
		})
	}

	sleepFor(c.Context(), h.delay)

	questions := h.catalog.SelectQuestions(req.JobTitle)
	if len(questions) == 0 {
		// Questions are never allowed to come back empty.
		log.Printf("⚠️  Empty question list for %q, falling back to default\n", req.JobTitle)
		questions = h.catalog.DefaultQuestions()
	}

	log.Printf("✅ Generated %d questions for: %s\n", len(questions), req.JobTitle)

	return c.JSON(models.GenerateQuestionsResponse{Questions: questions})
}
