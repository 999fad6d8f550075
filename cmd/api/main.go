package main

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"safety-hub-go/internal/handler"
	"safety-hub-go/internal/observability"
	"safety-hub-go/internal/upstream"
	"safety-hub-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	metrics := observability.NewMetrics()

	// Initialize upstream clients; they share one fetch helper so every
	// outbound call carries the same timeout policy.
	fetcher := upstream.NewFetcher(logger, metrics)
	weatherClient := upstream.NewOpenMeteoClient(cfg.OpenMeteoURL, fetcher)
	alertClient := upstream.NewNWSClient(cfg.NWSURL, fetcher)
	amberClient := upstream.NewAmberClient(cfg.AmberFeedURL, fetcher)

	// Initialize handlers
	weatherHandler := handler.NewWeatherHandler(weatherClient)
	alertHandler := handler.NewAlertHandler(alertClient)
	amberHandler := handler.NewAmberHandler(amberClient)
	crimeHandler := handler.NewCrimeHandler(logger)

	// Set up Gin router
	router := gin.Default()
	router.Use(observability.RequestCounter(metrics))

	// CORS open to all origins; everything served here is public data.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	// Static frontend
	router.StaticFile("/", filepath.Join(cfg.FrontendDir, "index.html"))
	router.StaticFile("/styles.css", filepath.Join(cfg.FrontendDir, "styles.css"))
	router.StaticFile("/app.js", filepath.Join(cfg.FrontendDir, "app.js"))

	// API routes
	router.GET("/api/health", handler.Health)
	router.GET("/api/weather", weatherHandler.GetWeather)
	router.GET("/api/alerts", alertHandler.GetAlerts)
	router.GET("/api/amber", amberHandler.GetAmber)
	router.GET("/api/protocols", handler.GetProtocols)
	router.GET("/api/crime", crimeHandler.GetCrime)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
