package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketValue(t *testing.T) {
	assert.Equal(t, 1500.0, MarketValue(10, 150))
	assert.Equal(t, 0.0, MarketValue(0, 150))
	assert.Equal(t, 0.0, MarketValue(10, 0))
	assert.Equal(t, 12.5, MarketValue(2.5, 5))
}

func TestCostBasis(t *testing.T) {
	assert.Equal(t, 1000.0, CostBasis(10, 100))
	assert.Equal(t, 0.0, CostBasis(0, 100))
}

func TestGainLoss(t *testing.T) {
	assert.Equal(t, 500.0, GainLoss(10, 100, 150))
	assert.Equal(t, -200.0, GainLoss(10, 100, 80))
	assert.Equal(t, 0.0, GainLoss(10, 100, 100))
}

func TestReturnRate(t *testing.T) {
	assert.Equal(t, 50.0, ReturnRate(500, 1000))
	assert.Equal(t, -20.0, ReturnRate(-200, 1000))
}

func TestReturnRate_ZeroCostBasisIsExactlyZero(t *testing.T) {
	for _, gainLoss := range []float64{0, 500, -500, 0.0001} {
		rate := ReturnRate(gainLoss, 0)
		assert.Equal(t, 0.0, rate)
		assert.False(t, math.IsNaN(rate))
		assert.False(t, math.IsInf(rate, 0))
	}
}

func TestAllocation(t *testing.T) {
	assert.Equal(t, 25.0, Allocation(250, 1000))
	assert.Equal(t, 100.0, Allocation(1000, 1000))
}

func TestAllocation_ZeroTotalIsExactlyZero(t *testing.T) {
	for _, value := range []float64{0, 250, -250} {
		alloc := Allocation(value, 0)
		assert.Equal(t, 0.0, alloc)
		assert.False(t, math.IsNaN(alloc))
		assert.False(t, math.IsInf(alloc, 0))
	}
}
