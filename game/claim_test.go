package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func calledSet(nums ...int) map[int]bool {
	set := make(map[int]bool, len(nums))
	for _, n := range nums {
		set[n] = true
	}
	return set
}

var testTicket = Ticket{
	5, 17, 23, 48, 90, // first line
	2, 11, 34, 56, 78, // middle line
	9, 25, 41, 63, 88, // last line
}

func TestLineClaims(t *testing.T) {
	assert := assert.New(t)

	first := calledSet(5, 17, 23, 48, 90)
	assert.True(TicketSatisfies(testTicket, first, ClaimFirstLine))
	assert.False(TicketSatisfies(testTicket, first, ClaimMiddleLine))
	assert.False(TicketSatisfies(testTicket, first, ClaimLastLine))

	// one number short of the middle line
	almost := calledSet(2, 11, 34, 56)
	assert.False(TicketSatisfies(testTicket, almost, ClaimMiddleLine))

	middle := calledSet(2, 11, 34, 56, 78)
	assert.True(TicketSatisfies(testTicket, middle, ClaimMiddleLine))

	last := calledSet(9, 25, 41, 63, 88)
	assert.True(TicketSatisfies(testTicket, last, ClaimLastLine))
}

func TestFirstFiveCountsAcrossLines(t *testing.T) {
	assert := assert.New(t)

	// four marks spread over all three lines
	assert.False(TicketSatisfies(testTicket, calledSet(5, 2, 9, 88), ClaimFirstFive))
	// fifth mark tips it over, line membership irrelevant
	assert.True(TicketSatisfies(testTicket, calledSet(5, 2, 9, 88, 34), ClaimFirstFive))
	// numbers not on the ticket do not count
	assert.False(TicketSatisfies(testTicket, calledSet(1, 3, 4, 6, 7, 8), ClaimFirstFive))
}

func TestFullHouse(t *testing.T) {
	assert := assert.New(t)

	all := calledSet(testTicket...)
	assert.True(TicketSatisfies(testTicket, all, ClaimFullHouse))

	missingOne := calledSet(testTicket[:TicketSize-1]...)
	assert.False(TicketSatisfies(testTicket, missingOne, ClaimFullHouse))

	// extra called numbers change nothing
	extra := calledSet(append([]int{1, 3, 4}, testTicket...)...)
	assert.True(TicketSatisfies(testTicket, extra, ClaimFullHouse))
}

func TestClaimTypeValid(t *testing.T) {
	assert := assert.New(t)

	for _, ct := range ClaimTypes {
		assert.True(ct.Valid())
	}
	assert.False(ClaimType("JALDI_FIVE").Valid())
	assert.False(ClaimType("").Valid())
}

func TestUnknownClaimTypeNeverSatisfied(t *testing.T) {
	all := calledSet(testTicket...)
	assert.False(t, TicketSatisfies(testTicket, all, ClaimType("CORNERS")))
}
