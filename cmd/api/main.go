package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"interview-coach/internal/config"
	"interview-coach/internal/handlers"
	"interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")
	log.Println("🎭 Running in MOCK MODE (no AI backend required)")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	catalogService := services.NewCatalogService()
	scorerService := services.NewScorerService()
	translatorService := services.NewTranslatorService()
	feedbackService := services.NewFeedbackService(translatorService)
	resumeService := services.NewResumeAnalyzerService()
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	questionsHandler := handlers.NewQuestionsHandler(
		catalogService,
		cfg.Mock.QuestionDelay,
	)
	resumeHandler := handlers.NewResumeHandler(
		resumeService,
		pdfParser,
		storageService,
		cfg.Storage.MaxFileSize,
		cfg.Mock.ResumeDelay,
	)
	answerHandler := handlers.NewAnswerHandler(
		scorerService,
		feedbackService,
		cfg.Mock.AnswerDelay,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Mock Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"mode":      "MOCK (Demo Mode)",
			"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		})
	})

	// API endpoints
	api.Post("/generate-questions", questionsHandler.HandleGenerateQuestions)
	api.Post("/analyze-resume", resumeHandler.HandleAnalyzeResume)
	api.Post("/analyze-resume/upload", resumeHandler.HandleUploadResume)
	api.Post("/analyze", answerHandler.HandleAnalyzeAnswer)

	// Static client
	app.Static("/", cfg.Storage.PublicPath)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Interview Coach Server starting on %s\n", addr)
	log.Printf("🧪 Test: http://localhost%s/api/health\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
