package domain

// TicketMatcher classifies a ticket against a captured draw
type TicketMatcher interface {
	// CountMatches returns how many of numbers are winning numbers
	CountMatches(numbers []int) int

	// Classify maps a match count to a tier; false when the ticket wins nothing
	Classify(matchCount int, numbers []int) (Tier, bool)

	// Match returns the tier, the raw match count and whether the ticket won anything
	Match(ticket Ticket) (Tier, int, bool)
}
