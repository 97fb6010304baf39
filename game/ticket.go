package game

import "math/rand"

const (
	// MaxNumber is the highest callable number.
	MaxNumber = 90
	// TicketSize is how many numbers one ticket carries.
	TicketSize = 15
	// LineSize is how many numbers make up one line of a ticket.
	LineSize = 5
)

// Ticket is 15 distinct numbers in [1,90]. Index order is fixed at
// generation time and defines the lines: positions 0-4 are the first
// line, 5-9 the middle line, 10-14 the last line.
type Ticket []int

// NewTicket draws random numbers until 15 distinct ones have been
// seen, keeping draw order. Always terminates since 15 <= 90.
func NewTicket(rng *rand.Rand) Ticket {
	seen := make(map[int]bool, TicketSize)
	t := make(Ticket, 0, TicketSize)
	for len(t) < TicketSize {
		n := rng.Intn(MaxNumber) + 1
		if seen[n] {
			continue
		}
		seen[n] = true
		t = append(t, n)
	}
	return t
}
