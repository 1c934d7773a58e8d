package rental

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/dmitrymomot/finkit/pkg/money"
)

// comparableSizeTolerance is how far a comparable's square footage may
// deviate from the target's.
const comparableSizeTolerance = 0.15

// Comparable is one similar unit used to benchmark rent.
type Comparable struct {
	Property    string
	Unit        string
	SquareFeet  int
	Rent        float64
	RentPerSqFt float64
}

// CompReport summarizes comparable rents for a target unit.
// SuggestedRent applies the comparables' median rent per square foot to
// the target's size; VariancePct is its distance from the target's
// current market rent.
type CompReport struct {
	TargetUnit         string
	TargetSquareFeet   int
	CurrentMarketRent  float64
	Comparables        []Comparable
	AverageRent        float64
	MedianRent         float64
	AverageRentPerSqFt float64
	SuggestedRent      float64
	VariancePct        float64
}

// RentComparables benchmarks a unit against similar units across the
// given properties: same bedroom count, square footage within 15%, the
// target itself excluded. Occupied comparables contribute their
// escalated lease rent as of asOf, vacant ones their market rent.
func (m *Manager) RentComparables(unitID string, propertyIDs []string, asOf time.Time) (CompReport, error) {
	target, ok := m.units[unitID]
	if !ok {
		return CompReport{}, fmt.Errorf("%w: %s", ErrUnitNotFound, unitID)
	}

	report := CompReport{
		TargetUnit:        target.Number,
		TargetSquareFeet:  target.SquareFeet,
		CurrentMarketRent: target.MarketRent,
	}

	var rents, perSqFt []float64
	for _, propertyID := range propertyIDs {
		propertyName := "Unknown"
		if p, ok := m.properties[propertyID]; ok {
			propertyName = p.Name
		}
		for _, unit := range m.propertyUnits(propertyID) {
			if unit.ID == target.ID || !comparableTo(unit, target) {
				continue
			}

			rent := unit.MarketRent
			if lease, ok := m.activeLease(unit.ID, asOf); ok {
				rent = lease.CurrentRent(asOf)
			}
			ratio := rent / float64(unit.SquareFeet)
			rents = append(rents, rent)
			perSqFt = append(perSqFt, ratio)
			report.Comparables = append(report.Comparables, Comparable{
				Property:    propertyName,
				Unit:        unit.Number,
				SquareFeet:  unit.SquareFeet,
				Rent:        money.RoundCents(rent),
				RentPerSqFt: money.RoundCents(ratio),
			})
		}
	}
	if len(report.Comparables) == 0 {
		return CompReport{}, fmt.Errorf("%w: unit %s", ErrNoComparables, unitID)
	}

	suggested := median(perSqFt) * float64(target.SquareFeet)
	report.AverageRent = money.RoundCents(mean(rents))
	report.MedianRent = money.RoundCents(median(rents))
	report.AverageRentPerSqFt = money.RoundCents(mean(perSqFt))
	report.SuggestedRent = money.RoundCents(suggested)
	if target.MarketRent > 0 {
		report.VariancePct = money.RoundCents((suggested - target.MarketRent) / target.MarketRent * 100)
	}
	return report, nil
}

// comparableTo reports whether a unit matches the target's bedroom
// count with square footage inside the tolerance.
func comparableTo(unit, target Unit) bool {
	if unit.Bedrooms != target.Bedrooms || target.SquareFeet == 0 {
		return false
	}
	diff := math.Abs(float64(unit.SquareFeet-target.SquareFeet)) / float64(target.SquareFeet)
	return diff < comparableSizeTolerance
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median is the middle value, or the midpoint of the two middle values
// for even counts.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
