package rental

import (
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// ExpiringLease is one active lease ending inside the report window.
// VariancePct is how far market rent sits above (positive) or below
// (negative) the current escalated rent.
type ExpiringLease struct {
	Unit            string
	Tenant          string
	LeaseEnd        time.Time
	DaysUntilExpiry int
	CurrentRent     float64
	MarketRent      float64
	VariancePct     float64
}

// LeaseExpirations lists active leases ending within monthsAhead
// calendar months of asOf (default three), soonest first. The variance
// against market flags renewals worth repricing.
func (m *Manager) LeaseExpirations(asOf time.Time, monthsAhead int) []ExpiringLease {
	if monthsAhead <= 0 {
		monthsAhead = 3
	}
	cutoff := addMonths(asOf, monthsAhead)

	var expiring []ExpiringLease
	for _, l := range m.leases {
		if l.Status != LeaseActive || l.End.Before(asOf) || l.End.After(cutoff) {
			continue
		}

		rent := l.CurrentRent(asOf)
		row := ExpiringLease{
			Unit:            "Unknown",
			Tenant:          "Unknown",
			LeaseEnd:        l.End,
			DaysUntilExpiry: daysBetween(asOf, l.End),
			CurrentRent:     money.RoundCents(rent),
		}
		if tenant, ok := m.tenants[l.TenantID]; ok {
			row.Tenant = tenant.Name
		}
		if unit, ok := m.units[l.UnitID]; ok {
			row.Unit = unit.Number
			row.MarketRent = unit.MarketRent
			if rent > 0 {
				row.VariancePct = money.RoundCents((unit.MarketRent - rent) / rent * 100)
			}
		}
		expiring = append(expiring, row)
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysUntilExpiry < expiring[j].DaysUntilExpiry
	})
	return expiring
}

// addMonths advances by whole calendar months, clamping to the last day
// of shorter months.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}
