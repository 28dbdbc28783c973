package matcher

import (
	"github.com/tirasundara/lotto-reward/internal/domain"
)

const (
	defaultMinMatches      = 3
	defaultBonusMatchCount = 5
)

// TierStrategy decides which tier a ticket belongs to, or declines
type TierStrategy interface {
	Classify(matchCount int, numbers []int, bonusNumber int) (domain.Tier, bool)
}

// BonusMatchStrategy promotes a ticket to the 5+1 tier when it matched
// MatchCount winning numbers and also holds the bonus number
type BonusMatchStrategy struct {
	MatchCount int
}

// NewBonusMatchStrategy creates a BonusMatchStrategy for 5 matching numbers
func NewBonusMatchStrategy() *BonusMatchStrategy {
	return &BonusMatchStrategy{
		MatchCount: defaultBonusMatchCount,
	}
}

// Classify implements the TierStrategy interface
func (s *BonusMatchStrategy) Classify(matchCount int, numbers []int, bonusNumber int) (domain.Tier, bool) {
	if matchCount != s.MatchCount {
		return "", false
	}

	for _, n := range numbers {
		if n == bonusNumber {
			return domain.Tier5Bonus, true
		}
	}

	return "", false
}

// CountMatchStrategy assigns the tier named by the plain match count
type CountMatchStrategy struct {
	MinMatches int
}

// NewCountMatchStrategy creates a CountMatchStrategy that ignores fewer than 3 matches
func NewCountMatchStrategy() *CountMatchStrategy {
	return &CountMatchStrategy{
		MinMatches: defaultMinMatches,
	}
}

// Classify implements the TierStrategy interface
func (s *CountMatchStrategy) Classify(matchCount int, _ []int, _ int) (domain.Tier, bool) {
	if matchCount < s.MinMatches {
		return "", false
	}

	return domain.TierForMatchCount(matchCount)
}

// defaultStrategies: 5 matches plus the bonus number is 5+1, 3 to 6 matches
// map to their own tier and anything lower wins nothing
func defaultStrategies() []TierStrategy {
	return []TierStrategy{
		NewBonusMatchStrategy(),
		NewCountMatchStrategy(),
	}
}

func classify(strategies []TierStrategy, matchCount int, numbers []int, bonusNumber int) (domain.Tier, bool) {
	// First strategy that accepts the ticket wins
	for _, strategy := range strategies {
		if tier, ok := strategy.Classify(matchCount, numbers, bonusNumber); ok {
			return tier, true
		}
	}
	return "", false
}
