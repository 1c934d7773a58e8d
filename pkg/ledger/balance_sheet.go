package ledger

import (
	"math"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// BalanceSheet is a statement of financial position as of a date.
// Liability and equity amounts are reported with their natural credit
// sign, so a funded company shows positive equity. Earnings not yet
// closed to retained earnings appear as a synthetic "Current Period
// Earnings" equity line, which keeps the accounting equation intact.
type BalanceSheet struct {
	AsOf                time.Time
	CurrentAssets       Section
	FixedAssets         Section
	TotalAssets         float64
	CurrentLiabilities  Section
	LongTermLiabilities Section
	TotalLiabilities    float64
	Equity              Section
	TotalEquity         float64
	Balanced            bool
}

// currentPeriodEarningsLine labels the synthetic equity line carrying
// unclosed net income.
const currentPeriodEarningsLine = "Current Period Earnings"

// BalanceSheet builds the statement of financial position from posted
// entries dated on or before asOf.
func (l *Ledger) BalanceSheet(asOf time.Time) BalanceSheet {
	totals := l.balances(func(e JournalEntry) bool {
		return !e.Date.After(asOf)
	})

	sheet := BalanceSheet{AsOf: asOf}
	var netIncome float64

	for number, raw := range totals {
		account := l.accounts[number]
		amount := normalBalance(account.Type, raw)
		if amount == 0 {
			continue
		}
		item := LineItem{
			AccountNumber: number,
			AccountName:   account.Name,
			Amount:        money.RoundCents(amount),
		}
		switch account.Type {
		case Asset:
			if account.Subtype == CurrentAsset {
				sheet.CurrentAssets.Lines = append(sheet.CurrentAssets.Lines, item)
				sheet.CurrentAssets.Total += amount
			} else {
				sheet.FixedAssets.Lines = append(sheet.FixedAssets.Lines, item)
				sheet.FixedAssets.Total += amount
			}
		case Liability:
			if account.Subtype == CurrentLiability {
				sheet.CurrentLiabilities.Lines = append(sheet.CurrentLiabilities.Lines, item)
				sheet.CurrentLiabilities.Total += amount
			} else {
				sheet.LongTermLiabilities.Lines = append(sheet.LongTermLiabilities.Lines, item)
				sheet.LongTermLiabilities.Total += amount
			}
		case Equity:
			sheet.Equity.Lines = append(sheet.Equity.Lines, item)
			sheet.Equity.Total += amount
		case Revenue:
			netIncome += amount
		case Expense, CostOfGoodsSold:
			netIncome -= amount
		}
	}

	sortLines(sheet.CurrentAssets.Lines)
	sortLines(sheet.FixedAssets.Lines)
	sortLines(sheet.CurrentLiabilities.Lines)
	sortLines(sheet.LongTermLiabilities.Lines)
	sortLines(sheet.Equity.Lines)

	// Unclosed earnings go last in the equity section, after the real
	// accounts.
	if math.Abs(netIncome) > 0 {
		sheet.Equity.Lines = append(sheet.Equity.Lines, LineItem{
			AccountName: currentPeriodEarningsLine,
			Amount:      money.RoundCents(netIncome),
		})
		sheet.Equity.Total += netIncome
	}

	sheet.TotalAssets = sheet.CurrentAssets.Total + sheet.FixedAssets.Total
	sheet.TotalLiabilities = sheet.CurrentLiabilities.Total + sheet.LongTermLiabilities.Total
	sheet.TotalEquity = sheet.Equity.Total
	sheet.Balanced = math.Abs(sheet.TotalAssets-(sheet.TotalLiabilities+sheet.TotalEquity)) <= BalanceTolerance

	sheet.CurrentAssets.Total = money.RoundCents(sheet.CurrentAssets.Total)
	sheet.FixedAssets.Total = money.RoundCents(sheet.FixedAssets.Total)
	sheet.TotalAssets = money.RoundCents(sheet.TotalAssets)
	sheet.CurrentLiabilities.Total = money.RoundCents(sheet.CurrentLiabilities.Total)
	sheet.LongTermLiabilities.Total = money.RoundCents(sheet.LongTermLiabilities.Total)
	sheet.TotalLiabilities = money.RoundCents(sheet.TotalLiabilities)
	sheet.Equity.Total = money.RoundCents(sheet.Equity.Total)
	sheet.TotalEquity = money.RoundCents(sheet.TotalEquity)

	return sheet
}
