package stats

import (
	"context"

	"stockfolio/internal/store"
)

// Service reads the store fresh on every call; results are stale the moment
// a mutation lands and callers are expected to recompute.
type Service struct {
	Store *store.Store
}

// AccountStats aggregates the holdings of one account.
func (s *Service) AccountStats(ctx context.Context, accountID string) (AccountStats, error) {
	holdings, err := s.Store.ListHoldingsByAccount(ctx, accountID)
	if err != nil {
		return AccountStats{}, err
	}
	return ComputeAccountStats(holdings), nil
}

// PortfolioStats aggregates every holding in the store.
func (s *Service) PortfolioStats(ctx context.Context) (PortfolioStats, error) {
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return PortfolioStats{}, err
	}
	accounts, err := s.Store.ListAccounts(ctx)
	if err != nil {
		return PortfolioStats{}, err
	}
	return ComputePortfolioStats(holdings, len(accounts)), nil
}

// HoldingsWithDetails returns every holding enriched with its stock and the
// derived figures. Dangling stock references are dropped.
func (s *Service) HoldingsWithDetails(ctx context.Context) ([]HoldingWithDetails, error) {
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.Store.ListStocks(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichHoldings(holdings, stocks), nil
}

// AccountHoldingsWithDetails is HoldingsWithDetails scoped to one account.
func (s *Service) AccountHoldingsWithDetails(ctx context.Context, accountID string) ([]HoldingWithDetails, error) {
	holdings, err := s.Store.ListHoldingsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	stocks, err := s.Store.ListStocks(ctx)
	if err != nil {
		return nil, err
	}
	return EnrichHoldings(holdings, stocks), nil
}

// Overview builds the full dashboard payload in one pass over the store.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	holdings, err := s.Store.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.Store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := s.Store.ListStocks(ctx)
	if err != nil {
		return nil, err
	}

	enriched := EnrichHoldings(holdings, stocks)
	return &Overview{
		PortfolioStats:    ComputePortfolioStats(holdings, len(accounts)),
		Holdings:          enriched,
		TopPerformers:     TopPerformers(enriched),
		WorstPerformers:   WorstPerformers(enriched),
		LastPriceUpdateAt: LastPriceUpdateAt(holdings),
	}, nil
}
