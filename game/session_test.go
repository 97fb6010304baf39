package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedEvent struct {
	room    string
	event   string
	payload any
}

type stubEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (e *stubEmitter) Broadcast(room, event string, payload any) {
	e.mu.Lock()
	e.events = append(e.events, recordedEvent{room: room, event: event, payload: payload})
	e.mu.Unlock()
}

func (e *stubEmitter) byName(event string) []recordedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []recordedEvent
	for _, ev := range e.events {
		if ev.event == event {
			out = append(out, ev)
		}
	}
	return out
}

func newTestRoom(t *testing.T) (*Session, *stubEmitter) {
	t.Helper()
	emitter := &stubEmitter{}
	reg := NewRegistry(emitter)
	return reg.CreateRoom(), emitter
}

func TestAddPlayerAndAssignTickets(t *testing.T) {
	assert := assert.New(t)
	s, emitter := newTestRoom(t)

	code := s.AddPlayer("Alice")
	assert.Len(code, 4)
	assert.True(s.HasPlayer(code))

	added := emitter.byName(EventPlayerAdded)
	if assert.Len(added, 1) {
		payload := added[0].payload.(PlayerAddedPayload)
		assert.Equal(code, payload.PlayerCode)
		assert.Equal("Alice", payload.PlayerName)
		assert.Equal(s.Code, added[0].room)
	}

	assert.True(s.AssignTickets(code, 2))
	assert.True(s.AssignTickets(code, 1)) // additive, earlier tickets kept

	tickets, ok := s.PlayerTickets(code)
	assert.True(ok)
	assert.Len(tickets, 3)
	for _, ticket := range tickets {
		assert.Len(ticket, TicketSize)
	}
	assert.Len(emitter.byName(EventTicketAssigned), 2)
}

func TestAssignTicketsUnknownPlayer(t *testing.T) {
	assert := assert.New(t)
	s, emitter := newTestRoom(t)

	assert.False(s.AssignTickets("ZZZZ", 1))
	assert.Empty(emitter.byName(EventTicketAssigned))
}

func TestCallNumberNeverRepeatsAndExhausts(t *testing.T) {
	assert := assert.New(t)
	s, emitter := newTestRoom(t)

	seen := make(map[int]bool, MaxNumber)
	for i := 0; i < MaxNumber; i++ {
		n, ok := s.CallNumber()
		assert.True(ok)
		assert.GreaterOrEqual(n, 1)
		assert.LessOrEqual(n, MaxNumber)
		assert.False(seen[n], "number %d called twice", n)
		seen[n] = true
	}

	// 91st call is a no-op: no mutation, no event
	_, ok := s.CallNumber()
	assert.False(ok)

	events := emitter.byName(EventNumberCalled)
	assert.Len(events, MaxNumber)
	last := events[len(events)-1].payload.(NumberCalledPayload)
	assert.Len(last.Called, MaxNumber)

	status := s.Status()
	assert.True(status.Exhausted)
	assert.Len(status.Called, MaxNumber)
}

func TestFirstFiveClaimFlow(t *testing.T) {
	assert := assert.New(t)
	s, emitter := newTestRoom(t)

	alice := s.AddPlayer("Alice")
	assert.True(s.AssignTickets(alice, 1))
	tickets, _ := s.PlayerTickets(alice)
	onTicket := calledSet(tickets[0]...)

	// claim before anything is achievable
	assert.Equal(ClaimRejected, s.SubmitClaim(alice, ClaimFirstFive))

	// call until five ticket numbers have come up
	marked := 0
	for marked < 5 {
		n, ok := s.CallNumber()
		assert.True(ok)
		if onTicket[n] {
			marked++
		}
	}

	assert.Equal(ClaimAccepted, s.SubmitClaim(alice, ClaimFirstFive))
	accepted := emitter.byName(EventClaimAccepted)
	if assert.Len(accepted, 1) {
		payload := accepted[0].payload.(ClaimAcceptedPayload)
		assert.Equal(ClaimFirstFive, payload.ClaimType)
		assert.Equal("Alice", payload.Winner)
	}

	// same claim type again is rejected, winner unchanged
	assert.Equal(ClaimRejected, s.SubmitClaim(alice, ClaimFirstFive))
	assert.Len(emitter.byName(EventClaimAccepted), 1)
	assert.Equal("Alice", s.Status().Claims[ClaimFirstFive])
}

func TestClaimAwardedOncePerType(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestRoom(t)

	alice := s.AddPlayer("Alice")
	bob := s.AddPlayer("Bob")
	assert.True(s.AssignTickets(alice, 1))
	assert.True(s.AssignTickets(bob, 1))

	for i := 0; i < MaxNumber; i++ {
		s.CallNumber()
	}

	// with all 90 called both tickets are full, but only the first claim lands
	assert.Equal(ClaimAccepted, s.SubmitClaim(alice, ClaimFullHouse))
	assert.Equal(ClaimRejected, s.SubmitClaim(bob, ClaimFullHouse))
	assert.Equal("Alice", s.Status().Claims[ClaimFullHouse])
}

func TestSubmitClaimDropped(t *testing.T) {
	assert := assert.New(t)
	s, emitter := newTestRoom(t)

	assert.Equal(ClaimDropped, s.SubmitClaim("ZZZZ", ClaimFullHouse))

	alice := s.AddPlayer("Alice")
	assert.Equal(ClaimDropped, s.SubmitClaim(alice, ClaimType("CORNERS")))
	assert.Empty(emitter.byName(EventClaimAccepted))
}

func TestSnapshotRoundTrip(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestRoom(t)

	alice := s.AddPlayer("Alice")
	assert.True(s.AssignTickets(alice, 2))
	tickets, _ := s.PlayerTickets(alice)

	var called []int
	for i := 0; i < 10; i++ {
		n, ok := s.CallNumber()
		assert.True(ok)
		called = append(called, n)
	}

	state, ok := s.Snapshot(alice)
	assert.True(ok)
	assert.Equal(s.Code, state.RoomCode)
	assert.Equal("Alice", state.PlayerName)
	assert.Equal(tickets, state.Tickets)
	assert.Equal(called, state.Called)
	if assert.NotNil(state.Current) {
		assert.Equal(called[len(called)-1], *state.Current)
	}
	for _, ct := range ClaimTypes {
		assert.Equal("", state.Claims[ct])
	}

	_, ok = s.Snapshot("ZZZZ")
	assert.False(ok)
}

func TestSnapshotBeforeFirstCallHasNilCurrent(t *testing.T) {
	assert := assert.New(t)
	s, _ := newTestRoom(t)

	alice := s.AddPlayer("Alice")
	state, ok := s.Snapshot(alice)
	assert.True(ok)
	assert.Nil(state.Current)
	assert.Empty(state.Called)
}
