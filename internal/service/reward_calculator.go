package service

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/lotto-reward/internal/domain"
	"github.com/tirasundara/lotto-reward/internal/matcher"
	"github.com/tirasundara/lotto-reward/internal/report"
)

var hundred = decimal.NewFromInt(100)

// RewardCalculator evaluates tickets against one captured draw.
// It holds no per-call state and is safe for concurrent use.
type RewardCalculator struct {
	matcher     domain.TicketMatcher
	ticketPrice decimal.Decimal
	rows        report.RowFormatter
	logger      zerolog.Logger
}

// Option configures a RewardCalculator
type Option func(*RewardCalculator)

// WithTicketPrice overrides the price of one ticket
func WithTicketPrice(price decimal.Decimal) Option {
	return func(c *RewardCalculator) {
		c.ticketPrice = price
	}
}

// WithRowFormatter overrides how result rows are rendered
func WithRowFormatter(rows report.RowFormatter) Option {
	return func(c *RewardCalculator) {
		c.rows = rows
	}
}

// WithMatcher replaces the default matcher built from the draw, e.g. one built
// by matcher.NewDrawMatcher with custom tier strategies
func WithMatcher(m domain.TicketMatcher) Option {
	return func(c *RewardCalculator) {
		c.matcher = m
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *RewardCalculator) {
		c.logger = logger
	}
}

// NewRewardCalculator creates a RewardCalculator for draw
func NewRewardCalculator(draw domain.WinningDraw, opts ...Option) *RewardCalculator {
	c := &RewardCalculator{
		ticketPrice: decimal.NewFromInt(domain.TicketPrice),
		rows:        report.NewStatisticsFormatter(nil),
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.matcher == nil {
		c.matcher = matcher.NewDrawMatcher(draw)
	}

	return c
}

// ComputeMatchCount returns how many ticket numbers are winning numbers
func (c *RewardCalculator) ComputeMatchCount(ticket domain.Ticket) int {
	return c.matcher.CountMatches(ticket.Numbers())
}

// ClassifyTier maps a match count to a tier, checking the bonus number for 5 matches
func (c *RewardCalculator) ClassifyTier(matchCount int, ticket domain.Ticket) (domain.Tier, bool) {
	return c.matcher.Classify(matchCount, ticket.Numbers())
}

func (c *RewardCalculator) PrizeFor(tier domain.Tier) decimal.Decimal {
	return domain.PrizeFor(tier)
}

// Accumulate returns stats with tier counted once more, leaving stats untouched
func (c *RewardCalculator) Accumulate(stats domain.Statistics, tier domain.Tier) domain.Statistics {
	return stats.Increment(tier)
}

// Calculate evaluates the tickets in input order and totals the prizes
func (c *RewardCalculator) Calculate(tickets []domain.Ticket) domain.RewardResult {
	stats := domain.NewStatistics()
	totalPrize := decimal.Zero

	for _, ticket := range tickets {
		tier, _, ok := c.matcher.Match(ticket)
		if !ok {
			continue
		}

		totalPrize = totalPrize.Add(c.PrizeFor(tier))
		stats = c.Accumulate(stats, tier)
	}

	totalSpent := c.ticketPrice.Mul(decimal.NewFromInt(int64(len(tickets))))
	rate, empty := rateOfReturn(totalPrize, totalSpent)

	c.logger.Debug().
		Int("tickets", len(tickets)).
		Int("winning_tickets", stats.Total()).
		Str("total_prize", totalPrize.String()).
		Str("rate_of_return", rate.StringFixed(1)).
		Msg("calculated reward")

	return domain.RewardResult{
		Statistics:    stats,
		TicketCount:   len(tickets),
		TotalPrize:    totalPrize,
		TotalSpent:    totalSpent,
		RateOfReturn:  rate,
		EmptyPurchase: empty,
	}
}

// CalculateReward returns the statistics rows in display order followed by the
// rate-of-return row
func (c *RewardCalculator) CalculateReward(tickets []domain.Ticket) []string {
	return c.rows.Rows(c.Calculate(tickets))
}

// rateOfReturn is prize*100/spent rounded half away from zero to one decimal.
// Nothing spent yields 0.
func rateOfReturn(totalPrize, totalSpent decimal.Decimal) (decimal.Decimal, bool) {
	if totalSpent.IsZero() {
		return decimal.Zero, true
	}

	return totalPrize.Mul(hundred).DivRound(totalSpent, 1), false
}
