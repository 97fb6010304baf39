package game

// ClaimType names a win pattern a player can claim.
type ClaimType string

const (
	ClaimFirstFive  ClaimType = "FIRST_FIVE"
	ClaimFirstLine  ClaimType = "FIRST_LINE"
	ClaimMiddleLine ClaimType = "MIDDLE_LINE"
	ClaimLastLine   ClaimType = "LAST_LINE"
	ClaimFullHouse  ClaimType = "FULL_HOUSE"
)

// ClaimTypes lists every pattern in display order.
var ClaimTypes = []ClaimType{
	ClaimFirstFive,
	ClaimFirstLine,
	ClaimMiddleLine,
	ClaimLastLine,
	ClaimFullHouse,
}

// Valid reports whether ct is a known claim type.
func (ct ClaimType) Valid() bool {
	switch ct {
	case ClaimFirstFive, ClaimFirstLine, ClaimMiddleLine, ClaimLastLine, ClaimFullHouse:
		return true
	}
	return false
}

// TicketSatisfies reports whether a single ticket meets the pattern
// given the set of called numbers. Pure; call order is irrelevant.
func TicketSatisfies(t Ticket, called map[int]bool, ct ClaimType) bool {
	switch ct {
	case ClaimFirstFive:
		marked := 0
		for _, n := range t {
			if called[n] {
				marked++
			}
		}
		return marked >= 5
	case ClaimFirstLine:
		return lineComplete(t, called, 0)
	case ClaimMiddleLine:
		return lineComplete(t, called, LineSize)
	case ClaimLastLine:
		return lineComplete(t, called, 2*LineSize)
	case ClaimFullHouse:
		return lineComplete(t, called, 0) &&
			lineComplete(t, called, LineSize) &&
			lineComplete(t, called, 2*LineSize)
	}
	return false
}

func lineComplete(t Ticket, called map[int]bool, start int) bool {
	for _, n := range t[start : start+LineSize] {
		if !called[n] {
			return false
		}
	}
	return true
}
