package domain

import "github.com/shopspring/decimal"

// Tier is the prize bucket a ticket falls into
type Tier string

// Prize tiers
const (
	Tier3      Tier = "3"
	Tier4      Tier = "4"
	Tier5      Tier = "5"
	Tier5Bonus Tier = "5+1"
	Tier6      Tier = "6"
)

// DisplayOrder is the fixed order of the statistics rows
var DisplayOrder = []Tier{Tier3, Tier4, Tier5, Tier5Bonus, Tier6}

// TicketPrice is the cost of a single ticket in won
const TicketPrice = 1000

// PrizeTable maps each tier to its prize. Never mutated after init.
var PrizeTable = map[Tier]decimal.Decimal{
	Tier3:      decimal.NewFromInt(5_000),
	Tier4:      decimal.NewFromInt(50_000),
	Tier5:      decimal.NewFromInt(1_500_000),
	Tier5Bonus: decimal.NewFromInt(30_000_000),
	Tier6:      decimal.NewFromInt(2_000_000_000),
}

// PrizeFor returns the prize for tier, or zero when the tier is unknown
func PrizeFor(tier Tier) decimal.Decimal {
	prize, ok := PrizeTable[tier]
	if !ok {
		return decimal.Zero
	}
	return prize
}

// TierForMatchCount maps a plain match count to its tier
func TierForMatchCount(matchCount int) (Tier, bool) {
	switch matchCount {
	case 3:
		return Tier3, true
	case 4:
		return Tier4, true
	case 5:
		return Tier5, true
	case 6:
		return Tier6, true
	}
	return "", false
}
