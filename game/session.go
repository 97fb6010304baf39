package game

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const playerCodeLen = 4

// ClaimResult tells the transport layer what to do after a claim.
type ClaimResult int

const (
	// ClaimAccepted means the win was recorded and broadcast to the room.
	ClaimAccepted ClaimResult = iota
	// ClaimRejected means the requester should receive claim_rejected:
	// the pattern is not satisfied, or the slot is already awarded.
	ClaimRejected
	// ClaimDropped means the request referenced an unknown player or
	// claim type; nothing is emitted.
	ClaimDropped
)

type player struct {
	name    string
	tickets []Ticket
}

// Session holds the live state of one room. Every method takes the
// session mutex, so each operation is one atomic step per room and
// claim validation plus award cannot interleave.
type Session struct {
	Code string

	mu        sync.Mutex
	rng       *rand.Rand
	emitter   Emitter
	players   map[string]*player
	called    []int
	calledSet map[int]bool
	current   int // 0 until the first call
	claims    map[ClaimType]string
	openedAt  time.Time
}

func newSession(code string, rng *rand.Rand, emitter Emitter) *Session {
	claims := make(map[ClaimType]string, len(ClaimTypes))
	for _, ct := range ClaimTypes {
		claims[ct] = ""
	}
	return &Session{
		Code:      code,
		rng:       rng,
		emitter:   emitter,
		players:   make(map[string]*player),
		calledSet: make(map[int]bool, MaxNumber),
		claims:    claims,
		openedAt:  time.Now(),
	}
}

// AddPlayer registers a name under a fresh player code and announces
// it to the room.
func (s *Session) AddPlayer(name string) string {
	s.mu.Lock()
	code := s.newPlayerCode()
	s.players[code] = &player{name: name}
	s.mu.Unlock()

	s.emitter.Broadcast(s.Code, EventPlayerAdded, PlayerAddedPayload{
		PlayerCode: code,
		PlayerName: name,
	})
	return code
}

// HasPlayer reports whether playerCode belongs to this room.
func (s *Session) HasPlayer(playerCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.players[playerCode]
	return ok
}

// AssignTickets appends count freshly generated tickets to the
// player's list, keeping any they already hold. Returns false when
// the player code does not resolve; nothing is emitted then.
func (s *Session) AssignTickets(playerCode string, count int) bool {
	s.mu.Lock()
	p, ok := s.players[playerCode]
	if !ok {
		s.mu.Unlock()
		return false
	}
	for i := 0; i < count; i++ {
		p.tickets = append(p.tickets, NewTicket(s.rng))
	}
	s.mu.Unlock()

	s.emitter.Broadcast(s.Code, EventTicketAssigned, TicketAssignedPayload{
		PlayerCode: playerCode,
	})
	return true
}

// CallNumber draws a number not yet called in this room, records it
// and broadcasts it with the full history. Returns (0, false) once
// all 90 numbers have been called; the room state is untouched then.
func (s *Session) CallNumber() (int, bool) {
	s.mu.Lock()
	if len(s.called) == MaxNumber {
		s.mu.Unlock()
		return 0, false
	}

	n := s.rng.Intn(MaxNumber) + 1
	for s.calledSet[n] {
		n = s.rng.Intn(MaxNumber) + 1
	}
	s.calledSet[n] = true
	s.called = append(s.called, n)
	s.current = n
	history := append([]int(nil), s.called...)
	s.mu.Unlock()

	s.emitter.Broadcast(s.Code, EventNumberCalled, NumberCalledPayload{
		Number: n,
		Called: history,
	})
	return n, true
}

// SubmitClaim adjudicates a claim. The slot check, validation against
// every ticket the player holds, and the award are one critical
// section, so a claim type is awarded at most once and the first
// valid claimant wins.
func (s *Session) SubmitClaim(playerCode string, ct ClaimType) ClaimResult {
	if !ct.Valid() {
		return ClaimDropped
	}

	s.mu.Lock()
	p, ok := s.players[playerCode]
	if !ok {
		s.mu.Unlock()
		return ClaimDropped
	}
	if s.claims[ct] != "" {
		s.mu.Unlock()
		return ClaimRejected
	}

	valid := false
	for _, t := range p.tickets {
		if TicketSatisfies(t, s.calledSet, ct) {
			valid = true
			break
		}
	}
	if !valid {
		s.mu.Unlock()
		return ClaimRejected
	}

	winner := p.name
	s.claims[ct] = winner
	s.mu.Unlock()

	s.emitter.Broadcast(s.Code, EventClaimAccepted, ClaimAcceptedPayload{
		ClaimType: ct,
		Winner:    winner,
	})
	return ClaimAccepted
}

// Snapshot returns everything a joining player needs to render the
// room. Returns false when the player code does not resolve.
func (s *Session) Snapshot(playerCode string) (PlayerState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerCode]
	if !ok {
		return PlayerState{}, false
	}
	return PlayerState{
		RoomCode:   s.Code,
		PlayerName: p.name,
		Tickets:    copyTickets(p.tickets),
		Called:     append([]int(nil), s.called...),
		Current:    s.currentPtr(),
		Claims:     s.copyClaims(),
	}, true
}

// PlayerInfo is the per-player line of a room status.
type PlayerInfo struct {
	PlayerCode string `json:"playerCode"`
	PlayerName string `json:"playerName"`
	Tickets    int    `json:"tickets"`
}

// RoomStatus is the read-only REST view of a room.
type RoomStatus struct {
	RoomCode  string               `json:"roomCode"`
	Players   []PlayerInfo         `json:"players"`
	Called    []int                `json:"called"`
	Current   *int                 `json:"current"`
	Claims    map[ClaimType]string `json:"claims"`
	Exhausted bool                 `json:"exhausted"`
}

// Status returns the room's current state for dashboards.
func (s *Session) Status() RoomStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]PlayerInfo, 0, len(s.players))
	for code, p := range s.players {
		players = append(players, PlayerInfo{
			PlayerCode: code,
			PlayerName: p.name,
			Tickets:    len(p.tickets),
		})
	}
	sort.Slice(players, func(i, j int) bool {
		return players[i].PlayerCode < players[j].PlayerCode
	})

	return RoomStatus{
		RoomCode:  s.Code,
		Players:   players,
		Called:    append([]int(nil), s.called...),
		Current:   s.currentPtr(),
		Claims:    s.copyClaims(),
		Exhausted: len(s.called) == MaxNumber,
	}
}

// PlayerTickets returns copies of every ticket the player holds.
func (s *Session) PlayerTickets(playerCode string) ([]Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[playerCode]
	if !ok {
		return nil, false
	}
	return copyTickets(p.tickets), true
}

// RoundSummary is what the archive keeps of a finished room.
type RoundSummary struct {
	RoomCode string
	Players  int
	Called   []int
	Claims   map[ClaimType]string
	OpenedAt time.Time
}

// Summary captures the room for archiving before it is discarded.
func (s *Session) Summary() RoundSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RoundSummary{
		RoomCode: s.Code,
		Players:  len(s.players),
		Called:   append([]int(nil), s.called...),
		Claims:   s.copyClaims(),
		OpenedAt: s.openedAt,
	}
}

// newPlayerCode must be called with the session mutex held.
func (s *Session) newPlayerCode() string {
	for {
		code := strings.ToUpper(uuid.NewString()[:playerCodeLen])
		if _, taken := s.players[code]; !taken {
			return code
		}
	}
}

// currentPtr must be called with the session mutex held.
func (s *Session) currentPtr() *int {
	if s.current == 0 {
		return nil
	}
	n := s.current
	return &n
}

// copyClaims must be called with the session mutex held.
func (s *Session) copyClaims() map[ClaimType]string {
	out := make(map[ClaimType]string, len(s.claims))
	for k, v := range s.claims {
		out[k] = v
	}
	return out
}

func copyTickets(in []Ticket) []Ticket {
	out := make([]Ticket, len(in))
	for i, t := range in {
		out[i] = append(Ticket(nil), t...)
	}
	return out
}
