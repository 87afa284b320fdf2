package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/cache"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/config"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/handlers"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/middleware"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/services"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/store"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/telemetry"
	"github.com/Griffinitto/Tour-Booking-Platform/pkg/firebase"
)

const serviceName = "tours-api"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize OpenTelemetry
	ctx := context.Background()
	tracerShutdown, err := telemetry.InitTracer(ctx, serviceName, cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	meterShutdown, err := telemetry.InitMeter(ctx, serviceName, cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Error shutting down metrics: %v", err)
		}
	}()

	// Select the tour store. This is the only place that knows which
	// backend is active.
	var (
		tourStore  store.TourStore
		authClient *firebaseauth.Client
	)
	switch cfg.TourStore {
	case config.StoreProxy:
		tourStore = store.NewProxyStore(cfg.ProxyBaseURL, cfg.FetchTimeout)
		log.Printf("Using proxy tour store at %s", cfg.ProxyBaseURL)
	default:
		fb, err := firebase.Init(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
		if err != nil {
			// Keep serving; requests will surface a misconfiguration
			// error instead of the process crash-looping.
			log.Printf("Failed to initialize Firebase: %v", err)
			tourStore = store.NewFirestoreStore(nil)
		} else {
			defer fb.Close()
			tourStore = store.NewFirestoreStore(fb.Firestore)
			authClient = fb.Auth
		}
		log.Println("Using Firestore tour store")
	}

	// Shared result cache, one instance for the process lifetime.
	tourCache := cache.New(cfg.CacheTTL)
	defer tourCache.Close()

	tourService := services.NewTourService(tourStore, tourCache)

	app := fiber.New(fiber.Config{
		AppName:      "Tour Booking Platform API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","request_id":"${locals:requestID}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
		TimeZone:   "UTC",
	}))
	app.Use(telemetry.New(telemetry.Config{
		ServiceName: serviceName,
	}))
	app.Use(middleware.PrometheusMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Accept, Accept-Encoding, Authorization, Content-Type, Origin, User-Agent, X-Requested-With",
	}))

	setupRoutes(app, tourService, cfg, authClient)

	port := cfg.ServerPort
	if port == "" {
		port = "3001"
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", cfg.ServerEnv)
	log.Printf("Tour store: %s", cfg.TourStore)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, tourService *services.TourService, cfg *config.Config, authClient *firebaseauth.Client) {
	// Prometheus scrape endpoint
	app.Get("/metrics", middleware.PrometheusHandler())

	// Health endpoints for k8s probes
	app.Get("/api/health", handlers.HealthCheck)
	app.Get("/api/readiness", handlers.ReadinessCheck(tourService))

	api := app.Group("/api")

	// Tour routes (public; a Bearer token attaches an identity but is
	// never required and never changes query results)
	tours := api.Group("/tours", middleware.OptionalAuth(cfg, authClient))
	handlers.SetupTourRoutes(tours, tourService)
}
