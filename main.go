package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/amourdesk/amourdesk-go/api"
	"github.com/amourdesk/amourdesk-go/internal/infrastructure/media"
	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
	"github.com/amourdesk/amourdesk-go/notify"
	"github.com/amourdesk/amourdesk-go/pkg/config"
	"github.com/amourdesk/amourdesk-go/store"
	"github.com/amourdesk/amourdesk-go/upstream"
)

func main() {
	logger := logging.NewChanneledLogger(&logging.LoggerConfig{
		JSONFormat:   config.LogJSONFormat,
		DefaultLevel: logging.ParseLevel(config.LogLevelDefault),
	})
	logger.Startup().Info("Starting AmourDesk admin service",
		"port", config.Port, "upstream", config.UpstreamBaseURL)

	client := upstream.NewClient(config.UpstreamBaseURL, config.UpstreamTimeout, logger)
	registry := store.NewRegistry(client, logger)
	notices := notify.NewCenter(config.NotificationRingSize)
	icons := media.NewIconProcessor(config.IconMaxWidth, config.IconQuality)

	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// Configure CORS to allow the dashboard dev servers (including IPv6)
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173", // Vite dev server
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
			"http://[::1]:3000",
			"http://[::1]:5173",
		},
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"X-Request-ID", "X-Requested-With",
		},
		AllowCredentials: true,
		ExposeHeaders: []string{
			"Content-Type", "X-Request-ID",
		},
	}))

	r.Use(api.RequestID())
	r.Use(api.RequestLogger(logger))

	handlers := api.New(registry, notices, icons, logger)
	handlers.Register(r)

	logger.Startup().Info("Listening", "addr", ":"+config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
