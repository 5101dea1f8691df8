package stats

import (
	"context"
	"testing"

	"stockfolio/internal/infrastructure/database"
	"stockfolio/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	st := store.New(db)
	return &Service{Store: st}, st
}

func TestService_AccountStats(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	account, err := st.CreateAccount(ctx, store.AccountCreate{Name: "a"})
	require.NoError(t, err)
	s1, err := st.CreateStock(ctx, store.StockCreate{Name: "S1"})
	require.NoError(t, err)
	s2, err := st.CreateStock(ctx, store.StockCreate{Name: "S2"})
	require.NoError(t, err)

	_, err = st.CreateHolding(ctx, store.HoldingCreate{AccountID: account.ID, StockID: s1.ID, Shares: 10, AverageCost: 100, CurrentPrice: 150})
	require.NoError(t, err)
	_, err = st.CreateHolding(ctx, store.HoldingCreate{AccountID: account.ID, StockID: s2.ID, Shares: 5, AverageCost: 200, CurrentPrice: 180})
	require.NoError(t, err)

	got, err := svc.AccountStats(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, 2400.0, got.TotalValue)
	assert.Equal(t, 2000.0, got.TotalCost)
	assert.Equal(t, 400.0, got.TotalGainLoss)
	assert.Equal(t, 20.0, got.TotalReturnRate)
	assert.Equal(t, 2, got.HoldingsCount)
}

func TestService_Overview(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	a, err := st.CreateAccount(ctx, store.AccountCreate{Name: "a"})
	require.NoError(t, err)
	b, err := st.CreateAccount(ctx, store.AccountCreate{Name: "b"})
	require.NoError(t, err)
	s1, err := st.CreateStock(ctx, store.StockCreate{Name: "S1"})
	require.NoError(t, err)
	s2, err := st.CreateStock(ctx, store.StockCreate{Name: "S2"})
	require.NoError(t, err)

	_, err = st.CreateHolding(ctx, store.HoldingCreate{AccountID: a.ID, StockID: s1.ID, Shares: 1, AverageCost: 100, CurrentPrice: 150})
	require.NoError(t, err)
	_, err = st.CreateHolding(ctx, store.HoldingCreate{AccountID: b.ID, StockID: s1.ID, Shares: 2, AverageCost: 100, CurrentPrice: 90})
	require.NoError(t, err)
	_, err = st.CreateHolding(ctx, store.HoldingCreate{AccountID: b.ID, StockID: s2.ID, Shares: 1, AverageCost: 50, CurrentPrice: 50})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.AccountsCount)
	assert.Equal(t, 2, overview.StocksCount) // s1 held twice counts once
	assert.Equal(t, 3, overview.HoldingsCount)
	assert.Len(t, overview.Holdings, 3)

	require.NotEmpty(t, overview.TopPerformers)
	assert.Equal(t, 50.0, overview.TopPerformers[0].ReturnRate)
	require.NotEmpty(t, overview.WorstPerformers)
	assert.Equal(t, -10.0, overview.WorstPerformers[0].ReturnRate)

	require.NotNil(t, overview.LastPriceUpdateAt)
	assert.Positive(t, *overview.LastPriceUpdateAt)
}

func TestService_OverviewEmptyStore(t *testing.T) {
	svc, _ := setupService(t)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, overview.HoldingsCount)
	assert.Empty(t, overview.Holdings)
	assert.Empty(t, overview.TopPerformers)
	assert.Nil(t, overview.LastPriceUpdateAt)
}
