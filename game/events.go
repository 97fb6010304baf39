package game

// Event names on the wire. Room-scoped events go through the Emitter;
// requester-scoped events are returned to the transport layer, which
// writes them to the acting connection only.
const (
	EventGameCreated    = "game_created"
	EventPlayerAdded    = "player_added"
	EventTicketAssigned = "ticket_assigned"
	EventNumberCalled   = "number_called"
	EventRoomClosed     = "room_closed"
	EventPlayerJoined   = "player_joined"
	EventJoinError      = "join_error"
	EventClaimAccepted  = "claim_accepted"
	EventClaimRejected  = "claim_rejected"
)

// Emitter delivers an event to every member of a room. Delivery is
// fire-and-forget; the game never waits on it.
type Emitter interface {
	Broadcast(roomCode, event string, payload any)
}

type GameCreatedPayload struct {
	RoomCode string `json:"roomCode"`
}

type PlayerAddedPayload struct {
	PlayerCode string `json:"playerCode"`
	PlayerName string `json:"playerName"`
}

type TicketAssignedPayload struct {
	PlayerCode string `json:"playerCode"`
}

type NumberCalledPayload struct {
	Number int   `json:"number"`
	Called []int `json:"called"`
}

type JoinErrorPayload struct {
	Message string `json:"message"`
}

type ClaimAcceptedPayload struct {
	ClaimType ClaimType `json:"claimType"`
	Winner    string    `json:"winner"`
}

type ClaimRejectedPayload struct {
	ClaimType ClaimType `json:"claimType"`
}

// PlayerState is the full snapshot sent to a player joining with
// their code. Current is nil until the first number is called.
type PlayerState struct {
	RoomCode   string               `json:"roomCode"`
	PlayerName string               `json:"playerName"`
	Tickets    []Ticket             `json:"tickets"`
	Called     []int                `json:"called"`
	Current    *int                 `json:"current"`
	Claims     map[ClaimType]string `json:"claims"`
}
