package domain

import "github.com/shopspring/decimal"

// RewardResult contains the outcome of evaluating a batch of tickets against a draw
type RewardResult struct {
	Statistics   Statistics
	TicketCount  int
	TotalPrize   decimal.Decimal
	TotalSpent   decimal.Decimal
	RateOfReturn decimal.Decimal // percent, rounded to one decimal place

	// EmptyPurchase is set when no tickets were evaluated; RateOfReturn is then zero
	EmptyPurchase bool
}

// Report is the formatted output, one row per tier plus the rate-of-return row
type Report []string
