package report

import (
	"encoding/json"
	"strings"

	"github.com/tirasundara/lotto-reward/internal/domain"
)

// OutputFormatter defines the interface for formatting reward results
type OutputFormatter interface {
	Format(result domain.RewardResult) ([]byte, error)
	FileExtension() string
}

// TextFormatter prints the statistics rows, one per line
type TextFormatter struct {
	Rows RowFormatter
}

func NewTextFormatter(rows RowFormatter) *TextFormatter {
	if rows == nil {
		rows = NewStatisticsFormatter(nil)
	}

	return &TextFormatter{
		Rows: rows,
	}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(result domain.RewardResult) ([]byte, error) {
	return []byte(strings.Join(f.Rows.Rows(result), "\n")), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// JSONFormatter formats reward results as JSON
type JSONFormatter struct {
	PrettyPrint bool
	Rows        RowFormatter
}

func NewJSONFormatter(prettyPrint bool, rows RowFormatter) *JSONFormatter {
	if rows == nil {
		rows = NewStatisticsFormatter(nil)
	}

	return &JSONFormatter{
		PrettyPrint: prettyPrint,
		Rows:        rows,
	}
}

// TierSummary is one tier in JSON output
type TierSummary struct {
	Tier  domain.Tier `json:"tier"`
	Prize string      `json:"prize"`
	Count int         `json:"count"`
}

// Summary is the JSON shape of a reward result. Statistics maps tier to count;
// Tiers carries the same counts with prizes in display order.
type Summary struct {
	Statistics    map[domain.Tier]int `json:"statistics"`
	Tiers         []TierSummary       `json:"tiers"`
	TicketCount   int                 `json:"ticket_count"`
	TotalPrize    string              `json:"total_prize"`
	TotalSpent    string              `json:"total_spent"`
	RateOfReturn  string              `json:"rate_of_return"`
	EmptyPurchase bool                `json:"empty_purchase"`
	Rows          []string            `json:"rows"`
}

// NewSummary builds the serialisable view of result
func NewSummary(result domain.RewardResult, rows RowFormatter) Summary {
	stats := make(map[domain.Tier]int, len(domain.DisplayOrder))
	tiers := make([]TierSummary, 0, len(domain.DisplayOrder))
	for _, tier := range domain.DisplayOrder {
		stats[tier] = result.Statistics[tier]
		tiers = append(tiers, TierSummary{
			Tier:  tier,
			Prize: domain.PrizeFor(tier).String(),
			Count: result.Statistics[tier],
		})
	}

	return Summary{
		Statistics:    stats,
		Tiers:         tiers,
		TicketCount:   result.TicketCount,
		TotalPrize:    result.TotalPrize.String(),
		TotalSpent:    result.TotalSpent.String(),
		RateOfReturn:  result.RateOfReturn.StringFixed(1),
		EmptyPurchase: result.EmptyPurchase,
		Rows:          rows.Rows(result),
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.RewardResult) ([]byte, error) {
	summary := NewSummary(result, f.Rows)
	if f.PrettyPrint {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
