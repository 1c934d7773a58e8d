package tax

import (
	"fmt"

	"github.com/dmitrymomot/finkit/pkg/finmath"
	"github.com/dmitrymomot/finkit/pkg/money"
)

// DepreciationDeduction is the deduction an asset yields for one tax
// year, with the cumulative position.
type DepreciationDeduction struct {
	AssetID         string
	Method          DepreciationMethod
	AnnualDeduction float64
	RemainingBasis  float64
	TotalToDate     float64
}

// DepreciationDeduction computes the registered asset's deduction for a
// tax year. Section 179 expenses the cost immediately up to the annual
// limit; MACRS follows the half-year tables; straight line spreads the
// cost over the useful life with no salvage.
func (c *Calculator) DepreciationDeduction(assetID string, taxYear int) (DepreciationDeduction, error) {
	asset, ok := c.assets[assetID]
	if !ok {
		return DepreciationDeduction{}, fmt.Errorf("%w: %s", ErrAssetNotFound, assetID)
	}

	yearsInService := taxYear - asset.PlacedInService.Year()
	if yearsInService < 0 {
		return DepreciationDeduction{}, fmt.Errorf("%w: %s placed in service %d", ErrNotInService, assetID, asset.PlacedInService.Year())
	}

	switch asset.Method {
	case Section179:
		deduction := min(asset.Cost, c.tables.Section179Limit)
		return DepreciationDeduction{
			AssetID:         assetID,
			Method:          Section179,
			AnnualDeduction: deduction,
			RemainingBasis:  0,
			TotalToDate:     deduction,
		}, nil

	case MACRS:
		schedule, err := finmath.MACRS(asset.Cost, asset.UsefulLife)
		if err != nil {
			return DepreciationDeduction{}, err
		}

		var annual, total float64
		if yearsInService < len(schedule) {
			annual = schedule[yearsInService]
			for _, d := range schedule[:yearsInService+1] {
				total += d
			}
		} else {
			for _, d := range schedule {
				total += d
			}
		}

		return DepreciationDeduction{
			AssetID:         assetID,
			Method:          MACRS,
			AnnualDeduction: money.RoundCents(annual),
			RemainingBasis:  money.RoundCents(asset.Cost - total),
			TotalToDate:     money.RoundCents(total),
		}, nil

	case StraightLine:
		schedule, err := finmath.StraightLine(asset.Cost, 0, asset.UsefulLife)
		if err != nil {
			return DepreciationDeduction{}, err
		}

		annual := schedule[0]
		total := annual * float64(min(yearsInService+1, asset.UsefulLife))
		return DepreciationDeduction{
			AssetID:         assetID,
			Method:          StraightLine,
			AnnualDeduction: money.RoundCents(annual),
			RemainingBasis:  money.RoundCents(asset.Cost - total),
			TotalToDate:     money.RoundCents(total),
		}, nil

	default:
		return DepreciationDeduction{}, fmt.Errorf("%w: %s", ErrUnknownMethod, asset.Method)
	}
}
