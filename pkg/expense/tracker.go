package expense

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Approval thresholds: anything above approvalThreshold needs sign-off,
// and equipment is held to the tighter equipmentThreshold.
const (
	approvalThreshold  = 5000
	equipmentThreshold = 1000
)

// transitions lists the approval statuses reachable from each status.
// Terminal statuses (Rejected, Paid) have no entries.
var transitions = map[ApprovalStatus][]ApprovalStatus{
	StatusPending:     {StatusApproved, StatusRejected, StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusPaid},
}

// Tracker registers vendors, budgets, and expenses, and routes expenses
// through the approval workflow. It is a plain in-memory structure held
// for the caller.
type Tracker struct {
	vendors  map[string]Vendor
	expenses []Expense
	budgets  map[string]Budget
	logger   *slog.Logger
}

// Option adjusts the Tracker configuration at construction time.
type Option func(*Tracker)

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// New builds an empty Tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		vendors: make(map[string]Vendor),
		budgets: make(map[string]Budget),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddVendor registers a vendor, assigning an ID when the caller left it
// empty and filling default payment terms ("Net 30") and method
// (Check). Returns the ID.
func (t *Tracker) AddVendor(v Vendor) string {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.PaymentTerms == "" {
		v.PaymentTerms = "Net 30"
	}
	if v.PreferredPayment == "" {
		v.PreferredPayment = PaymentCheck
	}
	t.vendors[v.ID] = v
	return v.ID
}

// Vendor looks up a registered vendor.
func (t *Tracker) Vendor(id string) (Vendor, bool) {
	v, ok := t.vendors[id]
	return v, ok
}

// AddBudget registers a budget, assigning an ID when empty and filling
// a zero Total with the category sum. Returns the ID.
func (t *Tracker) AddBudget(b Budget) string {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Total == 0 {
		for _, amount := range b.Categories {
			b.Total += amount
		}
	}
	t.budgets[b.ID] = b
	return b.ID
}

// AddExpense validates the vendor and records the expense, routing it
// into the approval workflow: amounts above the thresholds start
// Pending, everything else is auto-approved. Returns the expense ID.
func (t *Tracker) AddExpense(e Expense) (string, error) {
	if _, ok := t.vendors[e.VendorID]; !ok {
		return "", fmt.Errorf("%w: %s", ErrVendorNotFound, e.VendorID)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if requiresApproval(e) {
		e.Status = StatusPending
	} else {
		e.Status = StatusApproved
	}
	t.expenses = append(t.expenses, e)

	t.logger.Info("expense recorded",
		slog.String("expense_id", e.ID),
		slog.String("category", string(e.Category)),
		slog.Float64("amount", e.Amount),
		slog.String("status", string(e.Status)))
	return e.ID, nil
}

// requiresApproval applies the routing rules.
func requiresApproval(e Expense) bool {
	if e.Amount > approvalThreshold {
		return true
	}
	return e.Category == Equipment && e.Amount > equipmentThreshold
}

// Expense looks up a recorded expense by ID.
func (t *Tracker) Expense(id string) (Expense, bool) {
	for _, e := range t.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return Expense{}, false
}

// Approve moves a pending or under-review expense to Approved,
// recording who signed off.
func (t *Tracker) Approve(expenseID, approvedBy string) error {
	return t.transition(expenseID, StatusApproved, func(e *Expense) {
		e.ApprovedBy = approvedBy
	})
}

// Reject moves a pending or under-review expense to Rejected.
func (t *Tracker) Reject(expenseID, rejectedBy string) error {
	return t.transition(expenseID, StatusRejected, func(e *Expense) {
		e.ApprovedBy = rejectedBy
	})
}

// Review moves a pending expense to Under Review for a closer look.
func (t *Tracker) Review(expenseID string) error {
	return t.transition(expenseID, StatusUnderReview, nil)
}

// MarkPaid moves an approved expense to Paid and stamps the payment
// date.
func (t *Tracker) MarkPaid(expenseID string, paidDate time.Time) error {
	return t.transition(expenseID, StatusPaid, func(e *Expense) {
		e.PaidDate = paidDate
	})
}

func (t *Tracker) transition(expenseID string, to ApprovalStatus, mutate func(*Expense)) error {
	for i := range t.expenses {
		if t.expenses[i].ID != expenseID {
			continue
		}
		from := t.expenses[i].Status
		if !slices.Contains(transitions[from], to) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
		}
		t.expenses[i].Status = to
		if mutate != nil {
			mutate(&t.expenses[i])
		}
		t.logger.Info("expense status changed",
			slog.String("expense_id", expenseID),
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
}

// between reports whether d falls in [start, end], inclusive.
func between(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
