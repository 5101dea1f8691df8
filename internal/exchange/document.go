package exchange

import (
	"fmt"
	"time"

	"stockfolio/internal/domain"
)

// Document is the portable backup format: the full content of all five
// collections plus an export timestamp (epoch millis).
type Document struct {
	Accounts   []domain.Account  `json:"accounts"`
	Stocks     []domain.Stock    `json:"stocks"`
	Holdings   []domain.Holding  `json:"holdings"`
	Tags       []domain.Tag      `json:"tags"`
	StockTags  []domain.StockTag `json:"stockTags"`
	ExportedAt int64             `json:"exportedAt,omitempty"`
}

// BackupFilename returns the conventional name for a backup written on the
// given day, e.g. "portfolio-backup-2026-02-08.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("portfolio-backup-%s.json", t.Format("2006-01-02"))
}
