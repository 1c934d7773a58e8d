package rental

import "time"

// LeaseStatus tracks where a lease stands in its lifecycle. Only active
// leases produce rent in reports.
type LeaseStatus string

const (
	LeaseActive       LeaseStatus = "active"
	LeasePending      LeaseStatus = "pending"
	LeaseExpired      LeaseStatus = "expired"
	LeaseTerminated   LeaseStatus = "terminated"
	LeaseMonthToMonth LeaseStatus = "month_to_month"
)

// Rent escalation frequencies.
const (
	EscalateAnnually     = "annually"
	EscalateSemiAnnually = "semi-annually"
)

// Property is a building or complex holding rentable units.
type Property struct {
	ID         string
	Name       string
	Address    string
	Type       string
	TotalUnits int
	YearBuilt  int
	Amenities  []string
}

// Unit is one rentable unit within a property. MarketRent is the asking
// rent used for vacant units and comparables.
type Unit struct {
	ID         string
	PropertyID string
	Number     string
	SquareFeet int
	Bedrooms   int
	Bathrooms  float64
	Type       string
	Amenities  []string
	MarketRent float64
}

// Lease binds a tenant to a unit for a term. EscalationRate compounds
// per escalation period (for example 0.03 for 3%); AdditionalCharges
// are monthly extras such as parking or pet rent.
type Lease struct {
	ID                  string
	UnitID              string
	TenantID            string
	Start               time.Time
	End                 time.Time
	MonthlyRent         float64
	SecurityDeposit     float64
	Status              LeaseStatus
	EscalationRate      float64
	EscalationFrequency string
	AdditionalCharges   map[string]float64
}

// CurrentRent is the lease rent as of a date, compounding the
// escalation rate once per completed period. Periods count in whole
// calendar months from the lease start: twelve per annual step, six per
// semi-annual step.
func (l Lease) CurrentRent(asOf time.Time) float64 {
	if l.EscalationRate == 0 {
		return l.MonthlyRent
	}

	months := (asOf.Year()-l.Start.Year())*12 + int(asOf.Month()-l.Start.Month())
	if months < 0 {
		months = 0
	}

	var periods int
	switch l.EscalationFrequency {
	case EscalateAnnually:
		periods = months / 12
	case EscalateSemiAnnually:
		periods = months / 6
	default:
		return l.MonthlyRent
	}

	rent := l.MonthlyRent
	for i := 0; i < periods; i++ {
		rent *= 1 + l.EscalationRate
	}
	return rent
}

// Tenant is a lease counterparty.
type Tenant struct {
	ID          string
	Name        string
	Contact     map[string]string
	CreditScore int
	Employment  map[string]string
}
