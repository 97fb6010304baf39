package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tambolahq/tambola-backend/controllers"
	"github.com/tambolahq/tambola-backend/game"
)

func SetupRoutes(r *gin.Engine, registry *game.Registry) {
	rooms := &controllers.Rooms{Registry: registry}

	api := r.Group("/api")

	// ----------------------
	// Room routes (read-only)
	// ----------------------
	api.GET("/rooms", rooms.ListRooms)                                   // List active rooms
	api.GET("/rooms/:code", rooms.RoomStatus)                            // Room snapshot
	api.GET("/rooms/:code/players/:player/tickets", rooms.PlayerTickets) // A player's tickets
}
