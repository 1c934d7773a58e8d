package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// TrialBalanceRow is one account's debit or credit balance. Exactly one
// of Debit and Credit is nonzero, on the account's normal side unless
// the balance is inverted.
type TrialBalanceRow struct {
	AccountNumber string
	AccountName   string
	AccountType   AccountType
	Debit         float64
	Credit        float64
}

// TrialBalance lists all nonzero account balances with column totals.
// Balanced is true when total debits equal total credits within
// BalanceTolerance, which holds whenever every posted entry balanced.
type TrialBalance struct {
	AsOf         time.Time
	Rows         []TrialBalanceRow
	TotalDebits  float64
	TotalCredits float64
	Balanced     bool
}

// TrialBalance builds the debit/credit listing from posted entries dated
// on or before asOf.
func (l *Ledger) TrialBalance(asOf time.Time) TrialBalance {
	totals := l.balances(func(e JournalEntry) bool {
		return !e.Date.After(asOf)
	})

	tb := TrialBalance{AsOf: asOf}
	for number, raw := range totals {
		if raw == 0 {
			continue
		}
		account := l.accounts[number]
		row := TrialBalanceRow{
			AccountNumber: number,
			AccountName:   account.Name,
			AccountType:   account.Type,
		}
		if raw > 0 {
			row.Debit = money.RoundCents(raw)
		} else {
			row.Credit = money.RoundCents(-raw)
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits += row.Debit
		tb.TotalCredits += row.Credit
	}

	sort.Slice(tb.Rows, func(i, j int) bool {
		return tb.Rows[i].AccountNumber < tb.Rows[j].AccountNumber
	})

	tb.Balanced = math.Abs(tb.TotalDebits-tb.TotalCredits) <= BalanceTolerance
	tb.TotalDebits = money.RoundCents(tb.TotalDebits)
	tb.TotalCredits = money.RoundCents(tb.TotalCredits)
	return tb
}

// String renders the listing as an aligned debit/credit table.
func (tb TrialBalance) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trial Balance as of %s\n", tb.AsOf.Format("2006-01-02"))
	for _, row := range tb.Rows {
		var debit, credit string
		if row.Debit != 0 {
			debit = money.Currency(row.Debit)
		}
		if row.Credit != 0 {
			credit = money.Currency(row.Credit)
		}
		fmt.Fprintf(&b, "  %-6s %-28s %14s %14s\n",
			row.AccountNumber, row.AccountName, debit, credit)
	}
	fmt.Fprintf(&b, "  %-6s %-28s %14s %14s\n",
		"", "Total", money.Currency(tb.TotalDebits), money.Currency(tb.TotalCredits))
	if !tb.Balanced {
		b.WriteString("  OUT OF BALANCE\n")
	}
	return b.String()
}
