package cashflow

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// FlowType classifies a cash flow by statement activity.
type FlowType string

const (
	Operating FlowType = "Operating"
	Investing FlowType = "Investing"
	Financing FlowType = "Financing"
)

// Direction marks whether cash comes in or goes out. Amounts are always
// recorded positive; the direction carries the sign.
type Direction string

const (
	Inflow  Direction = "Inflow"
	Outflow Direction = "Outflow"
)

// Item is a single dated cash movement.
type Item struct {
	ID          string
	Date        time.Time
	Description string
	Amount      float64
	Type        FlowType
	Direction   Direction
	Category    string
	Subcategory string
	ProjectID   string
	Recurring   bool
	Frequency   string
	Notes       string
}

// signed returns the amount with the direction applied.
func (i Item) signed() float64 {
	if i.Direction == Outflow {
		return -i.Amount
	}
	return i.Amount
}

// CreditLine is a revolving facility counted toward available liquidity.
type CreditLine struct {
	Limit       float64
	Outstanding float64
}

// Analyzer accumulates cash flow items and derives statements,
// forecasts, burn and liquidity reports from them. It is a plain
// in-memory structure held for the caller.
type Analyzer struct {
	flows          []Item
	openingBalance float64
	bankAccounts   map[string]float64
	creditLines    map[string]CreditLine
	logger         *slog.Logger
}

// Option adjusts the Analyzer configuration at construction time.
type Option func(*Analyzer)

// WithOpeningBalance sets the cash balance before the first recorded
// item.
func WithOpeningBalance(balance float64) Option {
	return func(a *Analyzer) {
		a.openingBalance = balance
	}
}

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New builds an empty Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		bankAccounts: make(map[string]float64),
		creditLines:  make(map[string]CreditLine),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add records a cash flow item, assigning an ID when the caller left it
// empty, and returns the ID.
func (a *Analyzer) Add(item Item) string {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	a.flows = append(a.flows, item)
	a.logger.Debug("cash flow item recorded",
		slog.String("item_id", item.ID),
		slog.String("type", string(item.Type)),
		slog.Float64("amount", item.signed()))
	return item.ID
}

// SetBankAccount records the balance of a named bank account for
// liquidity analysis. Setting an account again replaces its balance.
func (a *Analyzer) SetBankAccount(name string, balance float64) {
	a.bankAccounts[name] = balance
}

// SetCreditLine records a named credit facility for liquidity analysis.
func (a *Analyzer) SetCreditLine(name string, line CreditLine) {
	a.creditLines[name] = line
}

// OpeningBalance returns the configured starting balance.
func (a *Analyzer) OpeningBalance() float64 { return a.openingBalance }

// CurrentBalance is the opening balance plus every recorded item.
func (a *Analyzer) CurrentBalance() float64 {
	balance := a.openingBalance
	for _, cf := range a.flows {
		balance += cf.signed()
	}
	return balance
}

// infinity flags ratios with a zero or cash-positive denominator, such
// as runway while the business earns more than it spends.
var infinity = math.Inf(1)

// roundTenth rounds to one decimal, used for runway and day counts.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// monthKey buckets a date into its calendar month.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// addMonths advances by whole calendar months, clamping to the last day
// of shorter months the way people read "one month later".
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
