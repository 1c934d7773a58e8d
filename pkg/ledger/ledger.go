package ledger

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// BalanceTolerance is the maximum absolute difference between total
// debits and total credits for an entry (or a balance sheet) to count
// as balanced. Amounts are conventional floats, so exact equality is
// not required.
const BalanceTolerance = 0.01

// Line is one side of a journal entry: an account number and a positive
// amount.
type Line struct {
	Account string
	Amount  float64
}

// JournalEntry is a double-entry record. Debits and credits must sum to
// the same total within BalanceTolerance. Entries start as drafts and
// affect statements only once posted.
type JournalEntry struct {
	ID          string
	Date        time.Time
	Description string
	Reference   string
	Debits      []Line
	Credits     []Line
	Posted      bool
	CreatedBy   string
}

// Ledger holds a chart of accounts and the journal recorded against it.
// It is a plain in-memory structure held for the caller; statements are
// recomputed from the journal on each call.
type Ledger struct {
	accounts map[string]Account
	entries  []JournalEntry
	logger   *slog.Logger
}

// Option adjusts the Ledger configuration at construction time.
type Option func(*Ledger)

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithChart replaces the standard chart of accounts entirely.
func WithChart(accounts ...Account) Option {
	return func(l *Ledger) {
		l.accounts = make(map[string]Account, len(accounts))
		for _, a := range accounts {
			l.accounts[a.Number] = a
		}
	}
}

// New builds a Ledger preloaded with StandardChart.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[string]Account),
		logger:   slog.Default(),
	}
	for _, a := range StandardChart() {
		l.accounts[a.Number] = a
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddAccount registers an additional account in the chart.
func (l *Ledger) AddAccount(a Account) error {
	if _, exists := l.accounts[a.Number]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAccount, a.Number)
	}
	l.accounts[a.Number] = a
	return nil
}

// Account looks up a chart account by number.
func (l *Ledger) Account(number string) (Account, bool) {
	a, ok := l.accounts[number]
	return a, ok
}

// Accounts returns the chart sorted by account number.
func (l *Ledger) Accounts() []Account {
	accounts := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Number < accounts[j].Number })
	return accounts
}

// Record validates an entry and appends it to the journal, assigning an
// ID when the caller left it empty. The entry keeps whatever Posted flag
// it carries, so drafts can be recorded and posted later via Post.
func (l *Ledger) Record(e JournalEntry) (string, error) {
	if len(e.Debits) == 0 && len(e.Credits) == 0 {
		return "", ErrEmptyEntry
	}

	var debits, credits float64
	for _, line := range e.Debits {
		if _, ok := l.accounts[line.Account]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownAccount, line.Account)
		}
		debits += line.Amount
	}
	for _, line := range e.Credits {
		if _, ok := l.accounts[line.Account]; !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownAccount, line.Account)
		}
		credits += line.Amount
	}
	if math.Abs(debits-credits) > BalanceTolerance {
		return "", fmt.Errorf("%w: debits %.2f, credits %.2f", ErrUnbalancedEntry, debits, credits)
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	l.entries = append(l.entries, e)
	l.logger.Debug("journal entry recorded",
		slog.String("entry_id", e.ID),
		slog.Float64("amount", debits),
		slog.Bool("posted", e.Posted))
	return e.ID, nil
}

// Post marks a recorded draft as posted so that statements pick it up.
// Posting an already posted entry is a no-op.
func (l *Ledger) Post(entryID string) error {
	for i := range l.entries {
		if l.entries[i].ID != entryID {
			continue
		}
		if !l.entries[i].Posted {
			l.entries[i].Posted = true
			l.logger.Info("journal entry posted",
				slog.String("entry_id", entryID),
				slog.String("description", l.entries[i].Description))
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
}

// Entry looks up a recorded entry by ID.
func (l *Ledger) Entry(entryID string) (JournalEntry, bool) {
	for _, e := range l.entries {
		if e.ID == entryID {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// balances accumulates per-account signed totals (debits positive,
// credits negative) over posted entries accepted by the filter.
func (l *Ledger) balances(include func(JournalEntry) bool) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range l.entries {
		if !e.Posted || !include(e) {
			continue
		}
		for _, line := range e.Debits {
			totals[line.Account] += line.Amount
		}
		for _, line := range e.Credits {
			totals[line.Account] -= line.Amount
		}
	}
	return totals
}

// normalBalance converts a raw debit-minus-credit total into the
// account's natural sign: liabilities, equity, and revenue flip so their
// customary credit balances read positive.
func normalBalance(t AccountType, raw float64) float64 {
	if t.debitNormal() {
		return raw
	}
	return -raw
}

// withinPeriod reports whether a date falls in [start, end], inclusive
// on both ends.
func withinPeriod(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
