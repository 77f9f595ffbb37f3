package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduhub/config"
	"eduhub/database"
	"eduhub/models"
	"eduhub/routes"
	"eduhub/services"
	"eduhub/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// Application represents the main application structure
type Application struct {
	config     *config.Config
	server     *http.Server
	router     *gin.Engine
	registry   *models.CategoryRegistry
	mediaStore storage.StorageInterface
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	cfg := config.LoadConfig()
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	registry, err := models.LoadCategoryRegistry(cfg.CategoriesPath)
	if err != nil {
		return nil, err
	}

	router := setupRouter(cfg)

	app := &Application{
		config:   cfg,
		registry: registry,
		router:   router,
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	return app, nil
}

// Start initializes all components and starts the HTTP server
func (app *Application) Start() error {
	log.Printf("Starting %s v%s in %s mode",
		app.config.AppName,
		app.config.AppVersion,
		app.config.Environment)

	if err := app.initializeDatabase(); err != nil {
		return err
	}

	if err := app.initializeStorage(); err != nil {
		return err
	}

	app.setupRoutes()

	go func() {
		log.Printf("Server starting on %s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()

	return nil
}

// initializeDatabase sets up the Mongo and Redis connections
func (app *Application) initializeDatabase() error {
	log.Println("Initializing database...")

	if err := database.Connect(app.config); err != nil {
		return err
	}

	if err := database.CreateIndexes(); err != nil {
		return err
	}

	// The identity cache degrades to Mongo lookups without Redis.
	if err := database.ConnectRedis(app.config); err != nil {
		log.Printf("Warning: Redis unavailable, identity cache disabled: %v", err)
	}

	log.Println("Database initialization completed successfully")
	return nil
}

// initializeStorage sets up the media storage backend
func (app *Application) initializeStorage() error {
	log.Println("Initializing storage subsystem...")

	backend, err := storage.NewClient(app.config)
	if err != nil {
		return err
	}
	if err := backend.HealthCheck(); err != nil {
		return err
	}
	app.mediaStore = backend

	log.Printf("Storage subsystem ready (provider: %s)", backend.ProviderName())
	return nil
}

// setupRoutes configures all application routes and middleware
func (app *Application) setupRoutes() {
	uploadService := services.NewUploadService(app.mediaStore)
	routes.SetupRoutes(app.router, app.registry, uploadService)
	log.Printf("Routes configured for %d categories", len(app.registry.All()))
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	router.Use(gin.Recovery())

	// Health check endpoint (before other middleware)
	router.GET("/health", healthCheckHandler())

	// Local media is served straight from the upload path.
	if cfg.StorageProvider == "local" {
		router.Static("/uploads", cfg.UploadPath)
	}

	return router
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutdown signal received...")

	app.shutdown()
}

// shutdown gracefully shuts down the application
func (app *Application) shutdown() {
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := database.CloseRedis(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}
	if err := database.Disconnect(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown complete")
}

// Health check handler for monitoring
func healthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"service":   "eduhub",
			"timestamp": time.Now().Unix(),
		}

		if database.GetDatabase() != nil {
			if err := database.Ping(); err != nil {
				health["status"] = "degraded"
				health["database"] = "unhealthy"
			} else {
				health["database"] = "healthy"
			}
		}

		c.JSON(http.StatusOK, health)
	}
}
