package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"awattar-dashboard/internal/api/handlers"
	"awattar-dashboard/internal/api/middleware"
	"awattar-dashboard/internal/config"
	"awattar-dashboard/internal/data"
	"awattar-dashboard/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", *cfgPath, err)
		}
		cfg = loaded
	}

	// Environment overrides, mainly for containerized deployments.
	if port := os.Getenv("API_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Fatalf("Invalid API_PORT %q: %v", port, err)
		}
		cfg.Server.Port = p
	}
	if dataFile := os.Getenv("DATA_FILE"); dataFile != "" {
		cfg.DataFile = dataFile
	}

	if _, err := os.Stat(cfg.DataFile); err != nil {
		// The server still starts; requests answer DATA_UNAVAILABLE until
		// the dump shows up.
		log.Printf("Price data file not found at %s (error: %v)", cfg.DataFile, err)
	} else {
		log.Printf("Price data file: %s", cfg.DataFile)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	metrics.Register()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.Middleware())

	cache := data.NewDatasetCache()
	dashboard := handlers.NewDashboardHandler(cache, cfg.DataFile, cfg.TariffLines())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api/v1")
	{
		api.GET("/dashboard", dashboard.GetDashboard)
		api.GET("/series", dashboard.GetSeries)
		api.GET("/patterns", dashboard.GetPatterns)
		api.GET("/stats", dashboard.GetStats)
		api.GET("/tariffs", dashboard.GetTariffs)
		api.GET("/export", dashboard.Export)
		api.POST("/reload", dashboard.Reload)
	}

	// Serve the dashboard frontend from web/dist (if it exists).
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing).
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
