// Package stats aggregates raw holdings into account-level and
// portfolio-level figures. The compute functions are pure and operate on
// already-fetched slices; Service binds them to the store.
package stats

import (
	"sort"

	"stockfolio/internal/calc"
	"stockfolio/internal/domain"
)

const performersCount = 5

// AccountStats summarizes the holdings of one account.
type AccountStats struct {
	TotalValue      float64 `json:"totalValue"`
	TotalCost       float64 `json:"totalCost"`
	TotalGainLoss   float64 `json:"totalGainLoss"`
	TotalReturnRate float64 `json:"totalReturnRate"`
	HoldingsCount   int     `json:"holdingsCount"`
}

// PortfolioStats extends AccountStats over the whole store. StocksCount is
// the number of distinct stocks actually held, not the size of the stock
// collection.
type PortfolioStats struct {
	AccountStats
	AccountsCount int `json:"accountsCount"`
	StocksCount   int `json:"stocksCount"`
}

// HoldingWithDetails is a holding enriched with its resolved stock and the
// derived per-position figures.
type HoldingWithDetails struct {
	domain.Holding
	Stock       domain.Stock `json:"stock"`
	MarketValue float64      `json:"marketValue"`
	CostBasis   float64      `json:"costBasis"`
	GainLoss    float64      `json:"gainLoss"`
	ReturnRate  float64      `json:"returnRate"`
}

// Overview is the dashboard payload: portfolio totals, the enriched holding
// list, best and worst positions by return rate, and the most recent price
// update. LastPriceUpdateAt is nil when there are no holdings.
type Overview struct {
	PortfolioStats
	Holdings          []HoldingWithDetails `json:"holdings"`
	TopPerformers     []HoldingWithDetails `json:"topPerformers"`
	WorstPerformers   []HoldingWithDetails `json:"worstPerformers"`
	LastPriceUpdateAt *int64               `json:"lastPriceUpdateAt"`
}

// ComputeAccountStats sums market values and cost bases over the holdings,
// then derives the return rate from the aggregated totals. It is never an
// average of per-holding rates.
func ComputeAccountStats(holdings []domain.Holding) AccountStats {
	var totalValue, totalCost float64
	for _, h := range holdings {
		totalValue += calc.MarketValue(h.Shares, h.CurrentPrice)
		totalCost += calc.CostBasis(h.Shares, h.AverageCost)
	}
	totalGainLoss := totalValue - totalCost
	return AccountStats{
		TotalValue:      totalValue,
		TotalCost:       totalCost,
		TotalGainLoss:   totalGainLoss,
		TotalReturnRate: calc.ReturnRate(totalGainLoss, totalCost),
		HoldingsCount:   len(holdings),
	}
}

// ComputePortfolioStats rolls up all holdings system-wide. accountsCount is
// the number of account records; the distinct-stock count is derived from
// the holdings themselves.
func ComputePortfolioStats(holdings []domain.Holding, accountsCount int) PortfolioStats {
	distinct := make(map[string]struct{}, len(holdings))
	for _, h := range holdings {
		distinct[h.StockID] = struct{}{}
	}
	return PortfolioStats{
		AccountStats:  ComputeAccountStats(holdings),
		AccountsCount: accountsCount,
		StocksCount:   len(distinct),
	}
}

// EnrichHoldings resolves each holding's stock and attaches the derived
// figures. Holdings whose stock cannot be resolved are silently dropped.
func EnrichHoldings(holdings []domain.Holding, stocks []domain.Stock) []HoldingWithDetails {
	stockByID := make(map[string]domain.Stock, len(stocks))
	for _, s := range stocks {
		stockByID[s.ID] = s
	}
	enriched := make([]HoldingWithDetails, 0, len(holdings))
	for _, h := range holdings {
		stock, ok := stockByID[h.StockID]
		if !ok {
			continue
		}
		marketValue := calc.MarketValue(h.Shares, h.CurrentPrice)
		costBasis := calc.CostBasis(h.Shares, h.AverageCost)
		gainLoss := calc.GainLoss(h.Shares, h.AverageCost, h.CurrentPrice)
		enriched = append(enriched, HoldingWithDetails{
			Holding:     h,
			Stock:       stock,
			MarketValue: marketValue,
			CostBasis:   costBasis,
			GainLoss:    gainLoss,
			ReturnRate:  calc.ReturnRate(gainLoss, costBasis),
		})
	}
	return enriched
}

// sortByReturnRate returns a copy sorted by return rate descending.
func sortByReturnRate(holdings []HoldingWithDetails) []HoldingWithDetails {
	sorted := make([]HoldingWithDetails, len(holdings))
	copy(sorted, holdings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReturnRate > sorted[j].ReturnRate
	})
	return sorted
}

// TopPerformers returns up to five holdings with the highest return rates,
// best first.
func TopPerformers(holdings []HoldingWithDetails) []HoldingWithDetails {
	sorted := sortByReturnRate(holdings)
	if len(sorted) > performersCount {
		sorted = sorted[:performersCount]
	}
	return sorted
}

// WorstPerformers returns up to five holdings with the lowest return rates,
// worst first. With fewer than five holdings the result may overlap with
// TopPerformers; there is no padding.
func WorstPerformers(holdings []HoldingWithDetails) []HoldingWithDetails {
	sorted := sortByReturnRate(holdings)
	start := len(sorted) - performersCount
	if start < 0 {
		start = 0
	}
	tail := sorted[start:]
	worst := make([]HoldingWithDetails, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		worst = append(worst, tail[i])
	}
	return worst
}

// LastPriceUpdateAt is the most recent LastPriceUpdate across the holdings,
// or nil when there are none. Never defaults to zero or the current time.
func LastPriceUpdateAt(holdings []domain.Holding) *int64 {
	if len(holdings) == 0 {
		return nil
	}
	max := holdings[0].LastPriceUpdate
	for _, h := range holdings[1:] {
		if h.LastPriceUpdate > max {
			max = h.LastPriceUpdate
		}
	}
	return &max
}
