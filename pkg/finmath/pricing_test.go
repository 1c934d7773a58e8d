package finmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/finkit/pkg/finmath"
)

func TestBondPrice(t *testing.T) {
	t.Parallel()

	t.Run("discount bond trades below par", func(t *testing.T) {
		price := finmath.BondPrice(1000, 0.06, 0.08, 10, 2)
		assert.InDelta(t, 864.10, price, 0.01)
	})

	t.Run("coupon at yield prices at par", func(t *testing.T) {
		price := finmath.BondPrice(1000, 0.08, 0.08, 10, 2)
		assert.InDelta(t, 1000, price, 1e-6)
	})

	t.Run("premium bond trades above par", func(t *testing.T) {
		price := finmath.BondPrice(1000, 0.08, 0.06, 10, 2)
		assert.Greater(t, price, 1000.0)
	})
}

func TestMacaulayDuration(t *testing.T) {
	t.Parallel()

	t.Run("zero coupon duration equals maturity", func(t *testing.T) {
		flows := []finmath.TimedCashFlow{{Time: 5, Amount: 1000}}
		assert.InDelta(t, 5, finmath.MacaulayDuration(flows, 0.07), 1e-9)
	})

	t.Run("coupon bond duration", func(t *testing.T) {
		flows := []finmath.TimedCashFlow{
			{Time: 1, Amount: 50},
			{Time: 2, Amount: 1050},
		}
		assert.InDelta(t, 1.9524, finmath.MacaulayDuration(flows, 0.05), 0.0001)
	})

	t.Run("no present value yields zero", func(t *testing.T) {
		assert.Zero(t, finmath.MacaulayDuration(nil, 0.05))
	})
}

func TestCAPM(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.114, finmath.CAPM(0.03, 1.2, 0.10), 1e-9)
	assert.InDelta(t, 0.03, finmath.CAPM(0.03, 0, 0.10), 1e-9, "zero beta earns the risk-free rate")
}

func TestWACC(t *testing.T) {
	t.Parallel()

	t.Run("tax shield discounts the debt side", func(t *testing.T) {
		wacc, err := finmath.WACC(700000, 300000, 0.12, 0.08, 0.25)
		require.NoError(t, err)
		assert.InDelta(t, 0.102, wacc, 1e-9)
	})

	t.Run("no capital fails", func(t *testing.T) {
		_, err := finmath.WACC(0, 0, 0.12, 0.08, 0.25)
		require.ErrorIs(t, err, finmath.ErrZeroCapital)
	})
}
