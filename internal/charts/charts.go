// Package charts reshapes holdings into sorted, named data series for the
// presentation layer. Every transformer is pure and sorts by value
// descending (ties broken by name for a deterministic series).
package charts

import (
	"sort"

	"stockfolio/internal/calc"
	"stockfolio/internal/domain"
)

const (
	// UnknownAccountLabel marks groups whose account record is missing.
	// Unlike holdings enrichment, the by-account breakdown never drops a
	// group: its value still belongs in the chart.
	UnknownAccountLabel = "Unknown account"
	UnknownStockLabel   = "Unknown stock"
	UnknownTagLabel     = "Unknown tag"
	UntaggedLabel       = "Untagged"
)

// DefaultTopHoldingsLimit is used when TopHoldings gets a non-positive limit.
const DefaultTopHoldingsLimit = 10

// PiePoint is one slice of a breakdown chart. ID carries the grouping key
// (account id or holding id) for drill-down navigation.
type PiePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	ID    string  `json:"id"`
}

// BarPoint is one bar of the top-holdings ranking.
type BarPoint struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	GainLoss   float64 `json:"gainLoss"`
	ReturnRate float64 `json:"returnRate"`
}

// TagPoint is one slice of the by-tag breakdown, carrying the tag's display
// color (nil for the untagged bucket).
type TagPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color *string `json:"color"`
}

func sortPiePoints(points []PiePoint) {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
}

// ByAccount groups all holdings by account and sums market value per group.
// Groups whose account cannot be resolved are labeled, not omitted.
func ByAccount(accounts []domain.Account, holdings []domain.Holding) []PiePoint {
	nameByID := make(map[string]string, len(accounts))
	for _, a := range accounts {
		nameByID[a.ID] = a.Name
	}

	valueByAccount := make(map[string]float64)
	for _, h := range holdings {
		valueByAccount[h.AccountID] += calc.MarketValue(h.Shares, h.CurrentPrice)
	}

	points := make([]PiePoint, 0, len(valueByAccount))
	for accountID, value := range valueByAccount {
		name, ok := nameByID[accountID]
		if !ok {
			name = UnknownAccountLabel
		}
		points = append(points, PiePoint{Name: name, Value: value, ID: accountID})
	}
	sortPiePoints(points)
	return points
}

// ByStockInAccount maps each holding of one account to a point valued at
// market value and labeled with the stock name. No grouping is needed since
// an account holds at most one position per stock. ID carries the holding id.
func ByStockInAccount(holdings []domain.Holding, stocks []domain.Stock) []PiePoint {
	nameByID := make(map[string]string, len(stocks))
	for _, s := range stocks {
		nameByID[s.ID] = s.Name
	}

	points := make([]PiePoint, 0, len(holdings))
	for _, h := range holdings {
		name, ok := nameByID[h.StockID]
		if !ok {
			name = UnknownStockLabel
		}
		points = append(points, PiePoint{
			Name:  name,
			Value: calc.MarketValue(h.Shares, h.CurrentPrice),
			ID:    h.ID,
		})
	}
	sortPiePoints(points)
	return points
}

// ByTag spreads each holding's market value over its stock's tags. A stock
// with N tags contributes value/N to each (equal-split allocation); a stock
// with no tags contributes everything to the untagged bucket. Tag buckets
// are sorted by value descending, then the untagged bucket is appended
// last, and only when its value is greater than zero.
func ByTag(holdings []domain.Holding, stockTags []domain.StockTag, tags []domain.Tag) []TagPoint {
	tagByID := make(map[string]domain.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}
	tagIDsByStock := make(map[string][]string)
	for _, st := range stockTags {
		tagIDsByStock[st.StockID] = append(tagIDsByStock[st.StockID], st.TagID)
	}

	valueByTag := make(map[string]float64)
	var untaggedValue float64
	for _, h := range holdings {
		value := calc.MarketValue(h.Shares, h.CurrentPrice)
		tagIDs := tagIDsByStock[h.StockID]
		if len(tagIDs) == 0 {
			untaggedValue += value
			continue
		}
		split := value / float64(len(tagIDs))
		for _, tagID := range tagIDs {
			valueByTag[tagID] += split
		}
	}

	points := make([]TagPoint, 0, len(valueByTag)+1)
	for tagID, value := range valueByTag {
		point := TagPoint{Name: UnknownTagLabel, Value: value}
		if tag, ok := tagByID[tagID]; ok {
			point.Name = tag.Name
			point.Color = tag.Color
		}
		points = append(points, point)
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})

	if untaggedValue > 0 {
		points = append(points, TagPoint{Name: UntaggedLabel, Value: untaggedValue})
	}
	return points
}

// TopHoldings ranks holdings by market value descending and truncates to
// the top limit (DefaultTopHoldingsLimit when limit is not positive).
func TopHoldings(holdings []domain.Holding, stocks []domain.Stock, limit int) []BarPoint {
	if limit <= 0 {
		limit = DefaultTopHoldingsLimit
	}
	nameByID := make(map[string]string, len(stocks))
	for _, s := range stocks {
		nameByID[s.ID] = s.Name
	}

	points := make([]BarPoint, 0, len(holdings))
	for _, h := range holdings {
		name, ok := nameByID[h.StockID]
		if !ok {
			name = UnknownStockLabel
		}
		costBasis := calc.CostBasis(h.Shares, h.AverageCost)
		gainLoss := calc.GainLoss(h.Shares, h.AverageCost, h.CurrentPrice)
		points = append(points, BarPoint{
			Name:       name,
			Value:      calc.MarketValue(h.Shares, h.CurrentPrice),
			GainLoss:   gainLoss,
			ReturnRate: calc.ReturnRate(gainLoss, costBasis),
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	if len(points) > limit {
		points = points[:limit]
	}
	return points
}
