package game

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const roomCodeLen = 6

// Registry owns every active session, keyed by room code. It is
// created once at startup and handed to the transport layer; there is
// no package-level instance. Sessions do not share mutable state, so
// only the map itself needs guarding here.
type Registry struct {
	mu      sync.RWMutex
	rooms   map[string]*Session
	rng     *rand.Rand
	emitter Emitter
}

func NewRegistry(emitter Emitter) *Registry {
	return &Registry{
		rooms:   make(map[string]*Session),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		emitter: emitter,
	}
}

// CreateRoom allocates an empty session under a fresh room code.
func (r *Registry) CreateRoom() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLocked()
}

// Lookup resolves a room code to its session.
func (r *Registry) Lookup(code string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.rooms[code]
	return s, ok
}

// NewGame discards the session at oldCode and creates a replacement
// under a new code, as one registry operation. The old room's members
// get room_closed; the old code stops resolving immediately. Returns
// false when oldCode does not resolve.
func (r *Registry) NewGame(oldCode string) (*Session, bool) {
	r.mu.Lock()
	old, ok := r.rooms[oldCode]
	if !ok {
		r.mu.Unlock()
		return nil, false
	}
	delete(r.rooms, oldCode)
	s := r.createLocked()
	r.mu.Unlock()

	r.emitter.Broadcast(old.Code, EventRoomClosed, struct{}{})
	return s, true
}

// FindByPlayer scans active sessions for the one holding playerCode.
func (r *Registry) FindByPlayer(playerCode string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.rooms {
		if s.HasPlayer(playerCode) {
			return s, true
		}
	}
	return nil, false
}

// Codes returns the active room codes, sorted.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.rooms))
	for code := range r.rooms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// createLocked must be called with the registry mutex held. Each
// session gets a private rng so rooms never contend on one source.
func (r *Registry) createLocked() *Session {
	code := newRoomCode()
	for r.rooms[code] != nil {
		code = newRoomCode()
	}
	s := newSession(code, rand.New(rand.NewSource(r.rng.Int63())), r.emitter)
	r.rooms[code] = s
	return s
}

func newRoomCode() string {
	return strings.ToUpper(uuid.NewString()[:roomCodeLen])
}
