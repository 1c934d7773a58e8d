// Package ledger implements a double-entry general ledger with a chart
// of accounts, journal entries, and derived financial statements: income
// statement, balance sheet, trial balance, comparative statements and a
// ratio report.
//
// # Architecture
//
// A Ledger starts with StandardChart (accounts 1000-6700 covering the
// usual small-business set) and accepts extra accounts via AddAccount or
// a full replacement via WithChart. Entries enter through Record, which
// enforces that debits equal credits within BalanceTolerance and that
// every line references a known account. Entries recorded as drafts
// become visible to statements only after Post.
//
// Statements are recomputed from the journal on every call; the Ledger
// keeps no derived state. All statement builders follow the normal
// balance convention: assets and expenses read positive on debits,
// liabilities, equity and revenue read positive on credits.
//
// # Usage
//
//	gl := ledger.New()
//
//	id, err := gl.Record(ledger.JournalEntry{
//	    Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
//	    Description: "Initial capital",
//	    Debits:      []ledger.Line{{Account: "1000", Amount: 100000}},
//	    Credits:     []ledger.Line{{Account: "3000", Amount: 100000}},
//	    Posted:      true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	stmt := gl.IncomeStatement(start, end)
//	sheet := gl.BalanceSheet(asOf)
//	tb := gl.TrialBalance(asOf)
//
// Unclosed profit appears on the balance sheet as a synthetic "Current
// Period Earnings" equity line, so a sheet built from balanced entries
// always balances.
//
// # Error Handling
//
// Record and Post return sentinel errors (ErrUnknownAccount,
// ErrUnbalancedEntry, ErrEmptyEntry, ErrEntryNotFound,
// ErrDuplicateAccount) wrapped with the offending detail; test them with
// errors.Is. Statement builders cannot fail and return values directly.
package ledger
