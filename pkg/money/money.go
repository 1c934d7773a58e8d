package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts for one locale and currency symbol. The zero
// configuration from NewFormatter is US English with a dollar sign.
type Formatter struct {
	lang    language.Tag
	symbol  string
	printer *message.Printer
}

// Option adjusts a Formatter at construction time.
type Option func(*Formatter)

// WithSymbol replaces the currency symbol prefix.
func WithSymbol(symbol string) Option {
	return func(f *Formatter) {
		f.symbol = symbol
	}
}

// WithLanguage selects the locale used for digit grouping and decimal
// separators.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.lang = tag
	}
}

// NewFormatter builds an immutable Formatter.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		lang:   language.AmericanEnglish,
		symbol: "$",
	}
	for _, opt := range opts {
		opt(f)
	}
	f.printer = message.NewPrinter(f.lang)
	return f
}

// Currency renders an amount with the symbol, grouping and two decimals.
// Negative amounts use accounting parentheses.
func (f *Formatter) Currency(v float64) string {
	if v < 0 {
		return "(" + f.symbol + f.printer.Sprintf("%.2f", -v) + ")"
	}
	return f.symbol + f.printer.Sprintf("%.2f", v)
}

// CurrencyWhole renders an amount with the symbol and grouping but no
// decimals, for bracket ranges and headline figures.
func (f *Formatter) CurrencyWhole(v float64) string {
	if v < 0 {
		return "(" + f.symbol + f.printer.Sprintf("%.0f", -v) + ")"
	}
	return f.symbol + f.printer.Sprintf("%.0f", v)
}

// Amount renders a grouped two-decimal number without a symbol.
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

// Percent renders a decimal fraction as a percentage with two decimals:
// 0.0825 becomes "8.25%".
func (f *Formatter) Percent(fraction float64) string {
	return f.printer.Sprintf("%.2f%%", fraction*100)
}

var defaultFormatter = NewFormatter()

// Currency formats with the default US formatter.
func Currency(v float64) string { return defaultFormatter.Currency(v) }

// CurrencyWhole formats with the default US formatter.
func CurrencyWhole(v float64) string { return defaultFormatter.CurrencyWhole(v) }

// Amount formats with the default US formatter.
func Amount(v float64) string { return defaultFormatter.Amount(v) }

// Percent formats with the default US formatter.
func Percent(fraction float64) string { return defaultFormatter.Percent(fraction) }

// RoundCents rounds to two decimal places, half away from zero. Reports
// round at the edges; intermediate math stays unrounded.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
