// Package rental manages a rental property portfolio: properties,
// units, tenants, and leases, with the standard operating reports
// built on top of them. It covers the rent roll, physical and economic
// vacancy, upcoming lease expirations, annual net operating income,
// cap rate, multi-year cash-flow projections, and rent comparables.
//
// # Architecture
//
// A Manager holds the portfolio in memory for the caller. Units
// register under properties and leases under units and tenants, so
// reports never dangle. Only leases in LeaseActive status produce rent;
// lease rent compounds per completed escalation period
// (Lease.CurrentRent).
//
// Reports take explicit dates instead of reading the clock. Occupancy
// math quotes daily rent at a 30-day month, and the NOI build-up
// applies fixed operating expense ratios to gross rental income.
//
// # Usage
//
//	mgr := rental.New()
//	propertyID := mgr.AddProperty(rental.Property{Name: "Sunset Apartments"})
//	unitID, err := mgr.AddUnit(rental.Unit{
//	    PropertyID: propertyID,
//	    Number:     "101",
//	    SquareFeet: 850,
//	    Bedrooms:   2,
//	    MarketRent: 1500,
//	})
//	if err != nil {
//	    return err
//	}
//
//	tenantID := mgr.AddTenant(rental.Tenant{Name: "John Doe"})
//	_, err = mgr.AddLease(rental.Lease{
//	    UnitID:         unitID,
//	    TenantID:       tenantID,
//	    Start:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
//	    End:            time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
//	    MonthlyRent:    1500,
//	    Status:         rental.LeaseActive,
//	    EscalationRate: 0.03,
//	})
//
//	roll, err := mgr.RentRoll(propertyID, asOf)
//	stmt, err := mgr.NOI(propertyID, 2024)
//
// # Error Handling
//
// Registration and report methods return sentinel errors
// (ErrPropertyNotFound, ErrUnitNotFound, ErrTenantNotFound,
// ErrLeaseNotFound, ErrNoComparables) wrapped with the offending
// detail; test them with errors.Is.
package rental
