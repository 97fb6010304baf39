package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTicketShape(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		ticket := NewTicket(rng)
		assert.Len(ticket, TicketSize)

		seen := make(map[int]bool, TicketSize)
		for _, n := range ticket {
			assert.GreaterOrEqual(n, 1)
			assert.LessOrEqual(n, MaxNumber)
			assert.False(seen[n], "duplicate %d in ticket %v", n, ticket)
			seen[n] = true
		}
	}
}

func TestNewTicketVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	a := NewTicket(rng)
	b := NewTicket(rng)
	assert.NotEqual(t, a, b)
}
