package charts

import (
	"context"

	"stockfolio/internal/store"
)

// Service binds the pure transformers to the store. TopLimit is the
// configured N for the top-holdings ranking; zero falls back to
// DefaultTopHoldingsLimit.
type Service struct {
	Store    *store.Store
	TopLimit int
}

// AccountBreakdown is the portfolio-wide by-account series.
func (s *Service) AccountBreakdown(ctx context.Context) ([]PiePoint, error) {
	accounts, err := s.Store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	return ByAccount(accounts, holdings), nil
}

// StockBreakdown is the by-stock series within one account.
func (s *Service) StockBreakdown(ctx context.Context, accountID string) ([]PiePoint, error) {
	holdings, err := s.Store.ListHoldingsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	stocks, err := s.Store.ListStocks(ctx)
	if err != nil {
		return nil, err
	}
	return ByStockInAccount(holdings, stocks), nil
}

// TagBreakdown is the portfolio-wide by-tag series with equal-split
// allocation for multi-tagged stocks.
func (s *Service) TagBreakdown(ctx context.Context) ([]TagPoint, error) {
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	stockTags, err := s.Store.ListAllStockTags(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.Store.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return ByTag(holdings, stockTags, tags), nil
}

// TopHoldingsRanking is the top-N holdings by market value.
func (s *Service) TopHoldingsRanking(ctx context.Context) ([]BarPoint, error) {
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.Store.ListStocks(ctx)
	if err != nil {
		return nil, err
	}
	return TopHoldings(holdings, stocks, s.TopLimit), nil
}
