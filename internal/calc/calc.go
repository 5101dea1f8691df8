// Package calc holds the pure position arithmetic. Every function is total:
// defined for all inputs, including zero, with no entity knowledge.
package calc

// MarketValue is the current worth of a position.
func MarketValue(shares, currentPrice float64) float64 {
	return shares * currentPrice
}

// CostBasis is what was paid for a position.
func CostBasis(shares, averageCost float64) float64 {
	return shares * averageCost
}

// GainLoss is market value minus cost basis.
func GainLoss(shares, averageCost, currentPrice float64) float64 {
	return MarketValue(shares, currentPrice) - CostBasis(shares, averageCost)
}

// ReturnRate is gain or loss as a percentage of cost basis. A zero cost
// basis yields exactly 0, never NaN or Inf.
func ReturnRate(gainLoss, costBasis float64) float64 {
	if costBasis == 0 {
		return 0
	}
	return (gainLoss / costBasis) * 100
}

// Allocation is an item's value as a percentage of a total. A zero total
// yields exactly 0.
func Allocation(itemValue, totalValue float64) float64 {
	if totalValue == 0 {
		return 0
	}
	return (itemValue / totalValue) * 100
}
