package matcher

import (
	"github.com/tirasundara/lotto-reward/internal/domain"
)

var _ domain.TicketMatcher = (*DrawMatcher)(nil)

// DrawMatcher implements the TicketMatcher interface for one captured draw
type DrawMatcher struct {
	winning     map[int]struct{}
	bonusNumber int
	strategies  []TierStrategy
}

// NewDrawMatcher creates a DrawMatcher for the draw with the given strategies
func NewDrawMatcher(draw domain.WinningDraw, strategies ...TierStrategy) *DrawMatcher {
	if len(strategies) == 0 {
		strategies = defaultStrategies()
	}

	return &DrawMatcher{
		winning:     numberSet(draw.WinningNumbers()),
		bonusNumber: draw.BonusNumber(),
		strategies:  strategies,
	}
}

// CountMatches returns how many of the ticket numbers are winning numbers
func (m *DrawMatcher) CountMatches(numbers []int) int {
	count := 0
	for _, n := range numbers {
		if _, ok := m.winning[n]; ok {
			count++
		}
	}
	return count
}

// Classify maps a match count to a tier using the captured bonus number
func (m *DrawMatcher) Classify(matchCount int, numbers []int) (domain.Tier, bool) {
	return classify(m.strategies, matchCount, numbers, m.bonusNumber)
}

// Match implements the TicketMatcher interface
func (m *DrawMatcher) Match(ticket domain.Ticket) (domain.Tier, int, bool) {
	numbers := ticket.Numbers()
	matchCount := m.CountMatches(numbers)
	tier, ok := m.Classify(matchCount, numbers)
	return tier, matchCount, ok
}

func numberSet(numbers []int) map[int]struct{} {
	set := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}
	return set
}
