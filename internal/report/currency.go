package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultCurrencySuffix = "원"

// CurrencyFormatter renders a money amount for display
type CurrencyFormatter interface {
	Format(amount decimal.Decimal) string
}

// LocaleCurrencyFormatter groups the integer part of an amount the way the
// locale does and appends a currency suffix
type LocaleCurrencyFormatter struct {
	printer *message.Printer
	Suffix  string
}

// NewLocaleCurrencyFormatter creates a LocaleCurrencyFormatter for tag
func NewLocaleCurrencyFormatter(tag language.Tag, suffix string) *LocaleCurrencyFormatter {
	return &LocaleCurrencyFormatter{
		printer: message.NewPrinter(tag),
		Suffix:  suffix,
	}
}

// NewWonFormatter formats amounts as Korean won, e.g. 1,500,000원
func NewWonFormatter() *LocaleCurrencyFormatter {
	return NewLocaleCurrencyFormatter(language.Korean, defaultCurrencySuffix)
}

// Format implements the CurrencyFormatter interface
func (f *LocaleCurrencyFormatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%d", amount.IntPart()) + f.Suffix
}

// NewCurrencyFormatterFromLocale parses a BCP 47 locale such as "ko" or "en-US"
func NewCurrencyFormatterFromLocale(locale, suffix string) (*LocaleCurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return NewLocaleCurrencyFormatter(tag, suffix), nil
}
