package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tambolahq/tambola-backend/game"
)

// Rooms serves read-only views over the session registry. All
// mutation happens through the websocket protocol.
type Rooms struct {
	Registry *game.Registry
}

type roomListEntry struct {
	RoomCode  string `json:"roomCode"`
	Players   int    `json:"players"`
	Called    int    `json:"called"`
	Exhausted bool   `json:"exhausted"`
}

// ListRooms returns every active room with headline counts.
func (rc *Rooms) ListRooms(c *gin.Context) {
	codes := rc.Registry.Codes()
	out := make([]roomListEntry, 0, len(codes))
	for _, code := range codes {
		s, ok := rc.Registry.Lookup(code)
		if !ok {
			continue
		}
		st := s.Status()
		out = append(out, roomListEntry{
			RoomCode:  st.RoomCode,
			Players:   len(st.Players),
			Called:    len(st.Called),
			Exhausted: st.Exhausted,
		})
	}
	c.JSON(http.StatusOK, out)
}

// RoomStatus returns the full snapshot of one room.
func (rc *Rooms) RoomStatus(c *gin.Context) {
	s, ok := rc.Registry.Lookup(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, s.Status())
}

// PlayerTickets returns all tickets held by one player in a room.
func (rc *Rooms) PlayerTickets(c *gin.Context) {
	s, ok := rc.Registry.Lookup(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	tickets, ok := s.PlayerTickets(c.Param("player"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playerCode": c.Param("player"), "tickets": tickets})
}
