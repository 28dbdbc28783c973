package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/lotto-reward/internal/domain"
)

const (
	matchLabelFormat      = "%s개 일치"
	matchFiveBonusLabel   = "5개 일치, 보너스 볼 일치"
	statisticsRowFormat   = "%s (%s) - %d개"
	rateOfReturnRowFormat = "총 수익률은 %s%%입니다."
)

// RowFormatter turns a reward result into display rows
type RowFormatter interface {
	Rows(result domain.RewardResult) domain.Report
}

// StatisticsFormatter renders one row per tier in display order followed by
// the rate-of-return row
type StatisticsFormatter struct {
	Currency CurrencyFormatter
}

// NewStatisticsFormatter creates a StatisticsFormatter. A nil currency falls back to won.
func NewStatisticsFormatter(currency CurrencyFormatter) *StatisticsFormatter {
	if currency == nil {
		currency = NewWonFormatter()
	}

	return &StatisticsFormatter{
		Currency: currency,
	}
}

// Rows implements the RowFormatter interface
func (f *StatisticsFormatter) Rows(result domain.RewardResult) domain.Report {
	rows := make(domain.Report, 0, len(domain.DisplayOrder)+1)
	for _, tier := range domain.DisplayOrder {
		rows = append(rows, f.TierRow(tier, result.Statistics[tier]))
	}
	rows = append(rows, f.RateRow(result.RateOfReturn))
	return rows
}

// TierRow formats the statistics row of one tier
func (f *StatisticsFormatter) TierRow(tier domain.Tier, count int) string {
	return fmt.Sprintf(statisticsRowFormat, TierLabel(tier), f.Currency.Format(domain.PrizeFor(tier)), count)
}

// RateRow formats the rate-of-return row with exactly one decimal digit
func (f *StatisticsFormatter) RateRow(rate decimal.Decimal) string {
	return fmt.Sprintf(rateOfReturnRowFormat, rate.StringFixed(1))
}

// TierLabel is the human label of a tier
func TierLabel(tier domain.Tier) string {
	if tier == domain.Tier5Bonus {
		return matchFiveBonusLabel
	}
	return fmt.Sprintf(matchLabelFormat, string(tier))
}
