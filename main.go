package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/neujobscan/backend/agent"
	"github.com/neujobscan/backend/auth"
	"github.com/neujobscan/backend/billing"
	"github.com/neujobscan/backend/config"
	_ "github.com/neujobscan/backend/docs"
	"github.com/neujobscan/backend/gemini"
	"github.com/neujobscan/backend/handlers"
	"github.com/neujobscan/backend/mcp"
	"github.com/neujobscan/backend/storage"
)

// @title NeuJobScan API
// @version 1.0
// @description Resume/job ATS scanning backend: parsing, analysis, match scoring, skill gaps and rewrite suggestions.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@neujobscan.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Scan storage: Firestore when a project is configured, in-memory
	// otherwise so the service still runs locally
	var scanStore storage.ScanStore
	var userStore storage.UserStore
	if cfg.ProjectID != "" {
		log.Println("Initializing Firestore client...")
		firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore client: %v", err)
		}
		defer firestoreClient.Close()
		scanStore = firestoreClient
		userStore = firestoreClient
		log.Println("Firestore client initialized successfully")
	} else {
		log.Println("PROJECT_ID not set, using in-memory storage")
		memStore := storage.NewMemoryStore()
		scanStore = memStore
		userStore = memStore
	}

	// Resume file archival is optional
	var storageClient *storage.CloudStorageClient
	if cfg.ResumeBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		client, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
		}
		defer client.Close()
		storageClient = client
		log.Println("Cloud Storage client initialized successfully")
	}

	// Explanations fall back to the deterministic renderer when Gemini is off
	var explainer agent.Explainer
	if cfg.GeminiEnabled {
		log.Println("Initializing Gemini client...")
		geminiClient, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		explainer = geminiClient
		log.Println("Gemini client initialized successfully")
	}

	// Auth services
	jwtService := auth.NewJWTService(cfg)
	sessionStore := auth.NewMemorySessionStore()

	// Scan agent
	scanAgent := agent.NewScanAgent(cfg, scanStore, explainer)

	// Checkout provider
	var checkoutProvider billing.CheckoutProvider
	if cfg.CheckoutURL != "" {
		checkoutProvider = billing.NewHTTPProvider(cfg.CheckoutURL, cfg.CheckoutAPIKey,
			time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	} else {
		log.Println("CHECKOUT_URL not set, using mock checkout provider")
		checkoutProvider = billing.NewMockProvider()
	}

	// Create handlers
	scanHandler := handlers.NewScanHandler(scanAgent, cfg)
	parseHandler := handlers.NewParseHandler()
	matchHandler := handlers.NewMatchHandler()
	authHandler := handlers.NewAuthHandler(userStore, jwtService, sessionStore)
	uploadHandler := handlers.NewUploadHandler(cfg, storageClient, userStore)
	analyticsHandler := handlers.NewAnalyticsHandler(scanAgent)
	billingHandler := handlers.NewBillingHandler(checkoutProvider, userStore)

	mcpServer := mcp.NewServer(scanAgent.ToolRegistry())

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Protected auth endpoints
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService, sessionStore))
		{
			authProtected.POST("/logout", authHandler.Logout)
			authProtected.GET("/profile", authHandler.GetProfile)
		}

		// Scan pipeline. Anonymous scans pass userId explicitly; logged-in
		// callers may omit it and scan as themselves.
		scans := api.Group("/scan", auth.OptionalAuthMiddleware(jwtService, sessionStore))
		{
			scans.POST("", scanHandler.PerformScan)
			scans.GET("", scanHandler.GetScanHistory)
			scans.GET("/:scanId", scanHandler.GetScan)
			scans.GET("/:scanId/export", scanHandler.ExportScan)
		}

		// Standalone pipeline stages
		api.POST("/resume/parse", parseHandler.ParseResume)
		api.POST("/job/parse", parseHandler.ParseJob)
		api.POST("/match", matchHandler.CreateMatch)
		api.POST("/rewrite", matchHandler.GenerateRewrites)

		// Analytics projection
		api.GET("/analytics", analyticsHandler.GetAnalytics)

		// Resume file upload (authenticated)
		api.POST("/upload", auth.AuthMiddleware(jwtService, sessionStore), uploadHandler.UploadResume)

		// Billing
		api.POST("/billing/checkout", billingHandler.CreateCheckout)

		// Tools introspection endpoint
		api.GET("/tools", scanHandler.GetTools)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
