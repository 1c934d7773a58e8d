package ledger

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// LineItem is one account's contribution to a statement section.
type LineItem struct {
	AccountNumber string
	AccountName   string
	Amount        float64
}

// Section groups line items with their total, sorted by account number.
type Section struct {
	Lines []LineItem
	Total float64
}

// ExpenseBreakdown splits operating expenses by subtype. Finance
// expenses (interest) are excluded; they appear under other income and
// expense instead.
type ExpenseBreakdown struct {
	Operating      float64
	Administrative float64
	Selling        float64
	Total          float64
}

// OtherIncomeExpense carries the non-operating lines below operating
// income.
type OtherIncomeExpense struct {
	OtherIncome     float64
	InterestExpense float64
}

// IncomeStatement is a profit-and-loss report over an inclusive period.
// Revenue covers operating revenue only; other income and interest
// expense sit below operating income so nothing is counted twice.
type IncomeStatement struct {
	Period             string
	Start              time.Time
	End                time.Time
	Revenue            Section
	CostOfGoodsSold    Section
	GrossProfit        float64
	GrossMarginPct     float64
	OperatingExpenses  ExpenseBreakdown
	OperatingIncome    float64
	OperatingMarginPct float64
	Other              OtherIncomeExpense
	NetIncome          float64
	NetMarginPct       float64
}

// IncomeStatement builds the profit-and-loss report from posted entries
// dated within [start, end].
func (l *Ledger) IncomeStatement(start, end time.Time) IncomeStatement {
	totals := l.balances(func(e JournalEntry) bool {
		return withinPeriod(e.Date, start, end)
	})

	stmt := IncomeStatement{
		Period: start.Format("2006-01-02") + " to " + end.Format("2006-01-02"),
		Start:  start,
		End:    end,
	}

	for number, raw := range totals {
		account := l.accounts[number]
		amount := normalBalance(account.Type, raw)
		switch account.Type {
		case Revenue:
			if account.Subtype == OtherRevenue {
				stmt.Other.OtherIncome += amount
				continue
			}
			stmt.Revenue.Lines = append(stmt.Revenue.Lines, LineItem{
				AccountNumber: number,
				AccountName:   account.Name,
				Amount:        money.RoundCents(amount),
			})
			stmt.Revenue.Total += amount
		case CostOfGoodsSold:
			stmt.CostOfGoodsSold.Lines = append(stmt.CostOfGoodsSold.Lines, LineItem{
				AccountNumber: number,
				AccountName:   account.Name,
				Amount:        money.RoundCents(amount),
			})
			stmt.CostOfGoodsSold.Total += amount
		case Expense:
			switch account.Subtype {
			case AdministrativeExpense:
				stmt.OperatingExpenses.Administrative += amount
			case SellingExpense:
				stmt.OperatingExpenses.Selling += amount
			case FinanceExpense:
				stmt.Other.InterestExpense += amount
			default:
				stmt.OperatingExpenses.Operating += amount
			}
		}
	}

	sortLines(stmt.Revenue.Lines)
	sortLines(stmt.CostOfGoodsSold.Lines)

	stmt.OperatingExpenses.Total = stmt.OperatingExpenses.Operating +
		stmt.OperatingExpenses.Administrative +
		stmt.OperatingExpenses.Selling

	stmt.GrossProfit = stmt.Revenue.Total - stmt.CostOfGoodsSold.Total
	stmt.OperatingIncome = stmt.GrossProfit - stmt.OperatingExpenses.Total
	stmt.NetIncome = stmt.OperatingIncome + stmt.Other.OtherIncome - stmt.Other.InterestExpense

	if stmt.Revenue.Total > 0 {
		stmt.GrossMarginPct = money.RoundCents(stmt.GrossProfit / stmt.Revenue.Total * 100)
		stmt.OperatingMarginPct = money.RoundCents(stmt.OperatingIncome / stmt.Revenue.Total * 100)
		stmt.NetMarginPct = money.RoundCents(stmt.NetIncome / stmt.Revenue.Total * 100)
	}

	stmt.Revenue.Total = money.RoundCents(stmt.Revenue.Total)
	stmt.CostOfGoodsSold.Total = money.RoundCents(stmt.CostOfGoodsSold.Total)
	stmt.GrossProfit = money.RoundCents(stmt.GrossProfit)
	stmt.OperatingExpenses.Operating = money.RoundCents(stmt.OperatingExpenses.Operating)
	stmt.OperatingExpenses.Administrative = money.RoundCents(stmt.OperatingExpenses.Administrative)
	stmt.OperatingExpenses.Selling = money.RoundCents(stmt.OperatingExpenses.Selling)
	stmt.OperatingExpenses.Total = money.RoundCents(stmt.OperatingExpenses.Total)
	stmt.OperatingIncome = money.RoundCents(stmt.OperatingIncome)
	stmt.Other.OtherIncome = money.RoundCents(stmt.Other.OtherIncome)
	stmt.Other.InterestExpense = money.RoundCents(stmt.Other.InterestExpense)
	stmt.NetIncome = money.RoundCents(stmt.NetIncome)

	return stmt
}

func sortLines(lines []LineItem) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].AccountNumber < lines[j].AccountNumber
	})
}
