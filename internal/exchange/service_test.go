package exchange

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"stockfolio/internal/domain"
	"stockfolio/internal/infrastructure/database"
	"stockfolio/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupExchange(t *testing.T) (*Service, *store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return &Service{DB: db}, store.New(db)
}

func seed(t *testing.T, st *store.Store) {
	ctx := context.Background()
	account, err := st.CreateAccount(ctx, store.AccountCreate{Name: "Broker"})
	require.NoError(t, err)
	stock, err := st.CreateStock(ctx, store.StockCreate{Name: "ACME"})
	require.NoError(t, err)
	tag, err := st.CreateTag(ctx, store.TagCreate{Name: "tech"})
	require.NoError(t, err)
	require.NoError(t, st.AddTagToStock(ctx, stock.ID, tag.ID))
	_, err = st.CreateHolding(ctx, store.HoldingCreate{
		AccountID: account.ID, StockID: stock.ID,
		Shares: 10, AverageCost: 100, CurrentPrice: 150,
	})
	require.NoError(t, err)
}

func TestExport_IncludesEveryCollection(t *testing.T) {
	svc, st := setupExchange(t)
	seed(t, st)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Accounts, 1)
	assert.Len(t, doc.Stocks, 1)
	assert.Len(t, doc.Holdings, 1)
	assert.Len(t, doc.Tags, 1)
	assert.Len(t, doc.StockTags, 1)
	assert.Positive(t, doc.ExportedAt)
}

func TestExport_EmptyStoreSerializesArraysNotNull(t *testing.T) {
	svc, _ := setupExchange(t)

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	for _, key := range []string{`"accounts":[]`, `"stocks":[]`, `"holdings":[]`, `"tags":[]`, `"stockTags":[]`} {
		assert.Contains(t, string(data), key)
	}
}

func TestImport_RoundTripReproducesStore(t *testing.T) {
	source, sourceStore := setupExchange(t)
	seed(t, sourceStore)

	doc, err := source.Export(context.Background())
	require.NoError(t, err)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	target, targetStore := setupExchange(t)
	require.NoError(t, target.Import(context.Background(), raw))

	imported, err := target.Export(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, doc.Accounts, imported.Accounts)
	assert.ElementsMatch(t, doc.Stocks, imported.Stocks)
	assert.ElementsMatch(t, doc.Holdings, imported.Holdings)
	assert.ElementsMatch(t, doc.Tags, imported.Tags)
	assert.ElementsMatch(t, doc.StockTags, imported.StockTags)

	// the target store behaves normally after import
	tags, err := targetStore.ListTags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestImport_ReplacesExistingContent(t *testing.T) {
	svc, st := setupExchange(t)
	seed(t, st)

	empty := Document{
		Accounts:  []domain.Account{},
		Stocks:    []domain.Stock{},
		Holdings:  []domain.Holding{},
		Tags:      []domain.Tag{},
		StockTags: []domain.StockTag{},
	}
	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	require.NoError(t, svc.Import(context.Background(), raw))

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Accounts)
	assert.Empty(t, doc.Holdings)
}

func TestImport_MalformedHoldingLeavesStoreUntouched(t *testing.T) {
	svc, st := setupExchange(t)
	seed(t, st)

	before, err := svc.Export(context.Background())
	require.NoError(t, err)

	// shares as a string must fail type validation
	raw := []byte(`{
		"accounts": [], "stocks": [], "tags": [], "stockTags": [],
		"holdings": [{
			"id": "h1", "accountId": "a1", "stockId": "s1",
			"shares": "ten", "averageCost": 100, "currentPrice": 150,
			"lastPriceUpdate": 1, "notes": null, "createdAt": 1, "updatedAt": 1
		}]
	}`)
	err = svc.Import(context.Background(), raw)
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	after, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before.Accounts, after.Accounts)
	assert.Equal(t, before.Stocks, after.Stocks)
	assert.Equal(t, before.Holdings, after.Holdings)
	assert.Equal(t, before.Tags, after.Tags)
	assert.Equal(t, before.StockTags, after.StockTags)
}

func TestImport_MissingCollectionRejected(t *testing.T) {
	svc, _ := setupExchange(t)

	raw := []byte(`{"accounts": [], "stocks": [], "holdings": [], "tags": []}`)
	err := svc.Import(context.Background(), raw)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "stockTags")
}

func TestImport_RecordMissingRequiredFieldRejected(t *testing.T) {
	svc, _ := setupExchange(t)

	raw := []byte(`{
		"accounts": [{"id": "", "name": "Broker", "description": null, "createdAt": 1, "updatedAt": 1}],
		"stocks": [], "holdings": [], "tags": [], "stockTags": []
	}`)
	err := svc.Import(context.Background(), raw)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "account", validationErr.Collection)
	assert.Equal(t, "id", validationErr.Field)
}

func TestReset_ClearsAllCollections(t *testing.T) {
	svc, st := setupExchange(t)
	seed(t, st)

	require.NoError(t, svc.Reset(context.Background()))

	doc, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Accounts)
	assert.Empty(t, doc.Stocks)
	assert.Empty(t, doc.Holdings)
	assert.Empty(t, doc.Tags)
	assert.Empty(t, doc.StockTags)

	// the store stays structurally valid
	_, err = st.CreateAccount(context.Background(), store.AccountCreate{Name: "fresh"})
	assert.NoError(t, err)
}

func TestBackupFilename(t *testing.T) {
	day := time.Date(2026, 2, 8, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "portfolio-backup-2026-02-08.json", BackupFilename(day))
}

func TestWriteAndReadBackup(t *testing.T) {
	source, sourceStore := setupExchange(t)
	seed(t, sourceStore)

	dir := t.TempDir()
	path, err := source.WriteBackup(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, path, "portfolio-backup-")

	target, targetStore := setupExchange(t)
	require.NoError(t, target.ReadBackup(context.Background(), path))

	holdings, err := targetStore.ListHoldings(context.Background())
	require.NoError(t, err)
	assert.Len(t, holdings, 1)
}
