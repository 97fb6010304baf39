package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tambolahq/tambola-backend/game"
	"github.com/tambolahq/tambola-backend/utils/logger"
)

// request is the inbound frame. Every action reads only the fields it
// names; extras are ignored.
type request struct {
	Action      string         `json:"action"`
	RoomCode    string         `json:"roomCode"`
	OldRoomCode string         `json:"oldRoomCode"`
	PlayerName  string         `json:"playerName"`
	PlayerCode  string         `json:"playerCode"`
	Count       int            `json:"count"`
	ClaimType   game.ClaimType `json:"claimType"`
}

type Client struct {
	conn     *websocket.Conn
	hub      *Hub
	registry *game.Registry
	archive  *Archive
	send     chan []byte
	once     sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// enqueue hands a frame to the write pump without blocking.
func (c *Client) enqueue(b []byte) {
	select {
	case c.send <- b:
	default:
		logger.Debugf("ws: dropping frame, send buffer full")
	}
}

// sendEvent delivers a requester-scoped event to this client only.
func (c *Client) sendEvent(event string, payload any) {
	b, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		logger.Errorf("ws: marshal %s: %v", event, err)
		return
	}
	c.enqueue(b)
}

// --------------------
// Client read/write pumps
// --------------------
func (c *Client) readPump() {
	defer func() {
		c.hub.Drop(c)
		c.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("ws: client disconnected")
			} else {
				logger.Errorf("ws: read error: %v", err)
			}
			return
		}
		c.handle(msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Errorf("ws: write error: %v", err)
			return
		}
	}
}

// handle dispatches one inbound frame. A panic while handling a
// message is confined to that message.
func (c *Client) handle(msg []byte) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("ws: recovered handling %q: %v", msg, r)
		}
	}()

	var req request
	if err := json.Unmarshal(msg, &req); err != nil {
		logger.Errorf("ws: invalid message: %v", err)
		return
	}

	switch req.Action {
	case "create_room":
		c.createRoom()
	case "add_player":
		c.addPlayer(req)
	case "assign_tickets":
		c.assignTickets(req)
	case "call_number":
		c.callNumber(req)
	case "new_game":
		c.newGame(req)
	case "join_with_code":
		c.joinWithCode(req)
	case "submit_claim":
		c.submitClaim(req)
	default:
		logger.Debugf("ws: unknown action %q", req.Action)
	}
}

// --------------------
// Actions
// --------------------
func (c *Client) createRoom() {
	s := c.registry.CreateRoom()
	c.hub.Join(s.Code, c)
	c.sendEvent(game.EventGameCreated, game.GameCreatedPayload{RoomCode: s.Code})
	logger.Infof("room %s created", s.Code)
}

func (c *Client) addPlayer(req request) {
	s, ok := c.registry.Lookup(req.RoomCode)
	if !ok {
		return
	}
	code := s.AddPlayer(req.PlayerName)
	logger.Infof("room %s: player %q added as %s", s.Code, req.PlayerName, code)
}

func (c *Client) assignTickets(req request) {
	s, ok := c.registry.Lookup(req.RoomCode)
	if !ok {
		return
	}
	count := req.Count
	if count < 1 {
		count = 1
	}
	s.AssignTickets(req.PlayerCode, count)
}

func (c *Client) callNumber(req request) {
	s, ok := c.registry.Lookup(req.RoomCode)
	if !ok {
		return
	}
	if _, ok := s.CallNumber(); !ok {
		logger.Debugf("room %s: all %d numbers called", s.Code, game.MaxNumber)
	}
}

func (c *Client) newGame(req request) {
	old, ok := c.registry.Lookup(req.OldRoomCode)
	if !ok {
		return
	}
	summary := old.Summary()

	s, ok := c.registry.NewGame(req.OldRoomCode)
	if !ok {
		// lost a race with another new_game for the same room
		return
	}
	c.hub.CloseRoom(req.OldRoomCode)
	c.hub.Join(s.Code, c)
	c.sendEvent(game.EventGameCreated, game.GameCreatedPayload{RoomCode: s.Code})

	c.archive.SaveRound(summary)
	logger.Infof("room %s closed, room %s opened", req.OldRoomCode, s.Code)
}

func (c *Client) joinWithCode(req request) {
	s, ok := c.registry.FindByPlayer(req.PlayerCode)
	if !ok {
		c.sendEvent(game.EventJoinError, game.JoinErrorPayload{Message: "Invalid player code"})
		return
	}
	state, ok := s.Snapshot(req.PlayerCode)
	if !ok {
		c.sendEvent(game.EventJoinError, game.JoinErrorPayload{Message: "Invalid player code"})
		return
	}
	c.hub.Join(s.Code, c)
	c.sendEvent(game.EventPlayerJoined, state)
	logger.Infof("room %s: %s rejoined", s.Code, req.PlayerCode)
}

func (c *Client) submitClaim(req request) {
	s, ok := c.registry.Lookup(req.RoomCode)
	if !ok {
		return
	}
	switch s.SubmitClaim(req.PlayerCode, req.ClaimType) {
	case game.ClaimRejected:
		c.sendEvent(game.EventClaimRejected, game.ClaimRejectedPayload{ClaimType: req.ClaimType})
	case game.ClaimDropped:
		logger.Debugf("room %s: dropped claim %s from %q", req.RoomCode, req.ClaimType, req.PlayerCode)
	}
}
