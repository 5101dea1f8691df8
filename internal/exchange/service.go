// Package exchange serializes the whole store to one portable JSON
// document and restores it transactionally.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stockfolio/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service encapsulates export, import and reset. It holds the raw DB
// handle because clearing and refilling five collections must run inside
// one transaction.
type Service struct {
	DB *gorm.DB
}

// Export reads all five collections in full and wraps them with an export
// timestamp. Collections are never omitted; empty ones serialize as [].
func (s *Service) Export(ctx context.Context) (*Document, error) {
	doc := &Document{
		Accounts:  []domain.Account{},
		Stocks:    []domain.Stock{},
		Holdings:  []domain.Holding{},
		Tags:      []domain.Tag{},
		StockTags: []domain.StockTag{},
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Find(&doc.Accounts).Error; err != nil {
			return err
		}
		if err := tx.Find(&doc.Stocks).Error; err != nil {
			return err
		}
		if err := tx.Find(&doc.Holdings).Error; err != nil {
			return err
		}
		if err := tx.Find(&doc.Tags).Error; err != nil {
			return err
		}
		return tx.Find(&doc.StockTags).Error
	})
	if err != nil {
		return nil, err
	}
	doc.ExportedAt = time.Now().UnixMilli()
	return doc, nil
}

// Import validates the raw document and, only if every record of every
// collection passes, atomically replaces the entire store: all five
// collections are cleared and refilled in one transaction. Any failure
// leaves the existing store untouched.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return &ValidationError{Reason: err.Error()}
	}
	if err := validateDocument(&doc); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearAll(tx); err != nil {
			return err
		}
		if len(doc.Accounts) > 0 {
			if err := tx.Create(&doc.Accounts).Error; err != nil {
				return err
			}
		}
		if len(doc.Stocks) > 0 {
			if err := tx.Create(&doc.Stocks).Error; err != nil {
				return err
			}
		}
		if len(doc.Holdings) > 0 {
			if err := tx.Create(&doc.Holdings).Error; err != nil {
				return err
			}
		}
		if len(doc.Tags) > 0 {
			if err := tx.Create(&doc.Tags).Error; err != nil {
				return err
			}
		}
		if len(doc.StockTags) > 0 {
			if err := tx.Create(&doc.StockTags).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("accounts", len(doc.Accounts)).
		Int("stocks", len(doc.Stocks)).
		Int("holdings", len(doc.Holdings)).
		Int("tags", len(doc.Tags)).
		Int("stock_tags", len(doc.StockTags)).
		Msg("store replaced from import")
	return nil
}

// Reset clears all five collections in one transaction, leaving an empty
// but structurally valid store.
func (s *Service) Reset(ctx context.Context) error {
	err := s.DB.WithContext(ctx).Transaction(clearAll)
	if err != nil {
		return err
	}
	log.Info().Msg("store reset")
	return nil
}

func clearAll(tx *gorm.DB) error {
	for _, model := range []interface{}{
		&domain.StockTag{},
		&domain.Holding{},
		&domain.Tag{},
		&domain.Stock{},
		&domain.Account{},
	} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// WriteBackup exports the store to dir using the conventional filename and
// returns the written path.
func (s *Service) WriteBackup(ctx context.Context, dir string) (string, error) {
	doc, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, BackupFilename(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadBackup imports a backup file previously written by WriteBackup (or
// any document matching the export shape).
func (s *Service) ReadBackup(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.Import(ctx, data)
}
