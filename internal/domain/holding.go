package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holding is a position of one stock inside one account. At most one
// holding may exist per (account, stock) pair; the unique index backs
// the duplicate-position check in the store.
//
// LastPriceUpdate is refreshed whenever CurrentPrice changes, independent
// of other field updates. All timestamps are epoch milliseconds and are
// managed by the store, not by GORM's auto-time tracking, so that
// imported records keep their original timestamps.
type Holding struct {
	ID              string  `gorm:"column:id;primaryKey" json:"id"`
	AccountID       string  `gorm:"column:account_id;not null;index;uniqueIndex:idx_holdings_account_stock" json:"accountId"`
	StockID         string  `gorm:"column:stock_id;not null;index;uniqueIndex:idx_holdings_account_stock" json:"stockId"`
	Shares          float64 `gorm:"column:shares;not null" json:"shares"`
	AverageCost     float64 `gorm:"column:average_cost;not null" json:"averageCost"`
	CurrentPrice    float64 `gorm:"column:current_price;not null" json:"currentPrice"`
	LastPriceUpdate int64   `gorm:"column:last_price_update;not null" json:"lastPriceUpdate"`
	Notes           *string `gorm:"column:notes" json:"notes"`
	CreatedAt       int64   `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt       int64   `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updatedAt"`
}

func (Holding) TableName() string {
	return "holdings"
}

func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
