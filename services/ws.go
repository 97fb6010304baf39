package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tambolahq/tambola-backend/game"
	"github.com/tambolahq/tambola-backend/utils/logger"
)

// Gateway accepts websocket connections and wires each one to the hub
// and the session registry.
type Gateway struct {
	hub      *Hub
	registry *game.Registry
	archive  *Archive
	upgrader websocket.Upgrader
}

func NewGateway(registry *game.Registry, hub *Hub, archive *Archive) *Gateway {
	return &Gateway{
		hub:      hub,
		registry: registry,
		archive:  archive,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (g *Gateway) HandleWebSocket(c *gin.Context) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("ws: upgrade error: %v", err)
		return
	}

	client := &Client{
		conn:     conn,
		hub:      g.hub,
		registry: g.registry,
		archive:  g.archive,
		send:     make(chan []byte, 32),
	}
	logger.Infof("ws: new connection from %s", conn.RemoteAddr())

	go client.writePump()
	go client.readPump()
}
