package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tambolahq/tambola-backend/config"
	"github.com/tambolahq/tambola-backend/game"
	"github.com/tambolahq/tambola-backend/routes"
	"github.com/tambolahq/tambola-backend/services"
)

// setupRouter wires middleware, REST routes and the websocket endpoint.
func setupRouter(cfg config.Config, registry *game.Registry, gateway *services.Gateway) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, registry)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket game endpoint
	r.GET("/ws", gateway.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Optional round archive
	db := config.SetupDatabase(cfg.DatabaseURL)

	// In-memory game state and transport wiring
	hub := services.NewHub()
	registry := game.NewRegistry(hub)
	gateway := services.NewGateway(registry, hub, services.NewArchive(db))

	router := setupRouter(cfg, registry, gateway)

	log.Printf("Tambola backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
