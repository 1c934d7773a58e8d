package expense

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// reportingThreshold is the IRS 1099 minimum: vendors paid less in a
// tax year are not reportable.
const reportingThreshold = 600

// Form1099Status reports whether a vendor's paperwork is in order.
type Form1099Status string

const (
	Form1099Ready      Form1099Status = "Ready"
	Form1099Incomplete Form1099Status = "Incomplete"
)

// Form1099Row is one reportable vendor on the annual 1099 report.
type Form1099Row struct {
	VendorName    string
	TaxID         string
	TotalPayments float64
	PaymentCount  int
	W9OnFile      bool
	Status        Form1099Status
}

// Report1099 lists vendors paid the reporting threshold or more during
// a tax year. Only expenses marked Paid count. A vendor is Ready when
// both a tax ID and a W-9 are on file; a missing tax ID renders as
// "Missing". Rows are sorted by total payments, largest first.
func (t *Tracker) Report1099(taxYear int) []Form1099Row {
	start := time.Date(taxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(taxYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	totals := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, e := range t.expenses {
		if e.Status != StatusPaid || !between(e.Date, start, end) {
			continue
		}
		if counts[e.VendorID] == 0 {
			order = append(order, e.VendorID)
		}
		counts[e.VendorID]++
		totals[e.VendorID] += e.Amount
	}

	var rows []Form1099Row
	for _, vendorID := range order {
		v, ok := t.vendors[vendorID]
		if !ok || totals[vendorID] < reportingThreshold {
			continue
		}
		taxID := v.TaxID
		if taxID == "" {
			taxID = "Missing"
		}
		status := Form1099Incomplete
		if v.TaxID != "" && v.W9OnFile {
			status = Form1099Ready
		}
		rows = append(rows, Form1099Row{
			VendorName:    v.Name,
			TaxID:         taxID,
			TotalPayments: money.RoundCents(totals[vendorID]),
			PaymentCount:  counts[vendorID],
			W9OnFile:      v.W9OnFile,
			Status:        status,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPayments > rows[j].TotalPayments
	})
	return rows
}
