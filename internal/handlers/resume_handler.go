package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

type ResumeHandler struct {
	analyzer    services.ResumeAnalyzerService
	pdfParser   services.PDFParserService
	storage     services.StorageService
	maxFileSize int64
	delay       time.Duration
}

func NewResumeHandler(
	analyzer services.ResumeAnalyzerService,
	pdfParser services.PDFParserService,
	storage services.StorageService,
	maxFileSize int64,
	delay time.Duration,
) *ResumeHandler {
	return &ResumeHandler{
		analyzer:    analyzer,
		pdfParser:   pdfParser,
		storage:     storage,
		maxFileSize: maxFileSize,
		delay:       delay,
	}
}

// HandleAnalyzeResume handles POST /api/analyze-resume.
func (h *ResumeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	var req models.AnalyzeResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	sleepFor(c.Context(), h.delay)

	return h.analyzeText(c, req.ResumeText)
}

// HandleUploadResume handles POST /api/analyze-resume/upload. The uploaded PDF
// is stored, its text extracted, and the result runs through the same analysis
// pipeline as pasted text.
func (h *ResumeHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storage.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resumeText, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		h.storage.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume PDF: %v", err),
		})
	}

	log.Printf("📄 Resume PDF stored as %s (%d chars extracted)\n", filename, len(resumeText))

	sleepFor(c.Context(), h.delay)

	return h.analyzeText(c, resumeText)
}

func (h *ResumeHandler) analyzeText(c *fiber.Ctx, resumeText string) error {
	profile, questions, err := h.analyzer.Analyze(resumeText)
	if err != nil {
		if errors.Is(err, services.ErrResumeTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Resume text too short",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("✅ Resume analyzed: %d skills, %s, %s\n",
		len(profile.Skills), profile.ExperienceYears, profile.Education)

	return c.JSON(models.AnalyzeResumeResponse{
		ResumeData: profile,
		Questions:  questions,
	})
}
