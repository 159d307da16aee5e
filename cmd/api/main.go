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

	"alfredoptarigan/resume-parser/internal/config"
	"alfredoptarigan/resume-parser/internal/handlers"
	"alfredoptarigan/resume-parser/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Resolve the transient document directory
	tempDir := cfg.Storage.TempDir
	if tempDir == "" {
		dir, err := os.MkdirTemp("", "resume-parser")
		if err != nil {
			log.Fatalf("❌ Failed to create temp directory: %v", err)
		}
		tempDir = dir
	}

	storageService := services.NewStorageService(tempDir)
	if err := storageService.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create temp directory: %v", err)
	}
	log.Printf("✅ Using temporary directory: %s\n", storageService.Dir())

	// Initialize services
	fetcher := services.NewDocumentFetcher(storageService, cfg.Fetcher.Timeout)
	pdfParser := services.NewPDFParserService()
	webhookService := services.NewWebhookService(cfg.Webhook.URL, cfg.Webhook.Timeout)

	extractorService, err := services.NewExtractorService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Timeout,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	parserService := services.NewResumeParserService(
		fetcher,
		pdfParser,
		extractorService,
		webhookService,
		storageService,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	parseHandler := handlers.NewParseHandler(parserService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Parser API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/health", parseHandler.HandleHealth)
	app.Post("/parse-resume/", parseHandler.HandleParseResume)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Parser API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /health",
				"POST /parse-resume/",
			},
		})
	})

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
	log.Printf("🚀 Server starting on %s\n", addr)

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
		"detail": err.Error(),
	})
}
