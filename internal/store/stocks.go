package store

import (
	"context"
	"errors"

	"stockfolio/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type StockCreate struct {
	Name     string
	Symbol   *string
	Sector   *string
	Industry *string
	Notes    *string
}

type StockUpdate struct {
	Name     *string
	Symbol   *string
	Sector   *string
	Industry *string
	Notes    *string
}

func (s *Store) CreateStock(ctx context.Context, in StockCreate) (*domain.Stock, error) {
	ts := now()
	stock := domain.Stock{
		Name:      in.Name,
		Symbol:    in.Symbol,
		Sector:    in.Sector,
		Industry:  in.Industry,
		Notes:     in.Notes,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := s.DB.WithContext(ctx).Create(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// GetStock returns nil (without error) when no stock has the given id.
func (s *Store) GetStock(ctx context.Context, id string) (*domain.Stock, error) {
	var stock domain.Stock
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// ListStocks returns all stocks ordered by name ascending.
func (s *Store) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	var stocks []domain.Stock
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (s *Store) UpdateStock(ctx context.Context, id string, in StockUpdate) (*domain.Stock, error) {
	var stock domain.Stock
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&stock).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.Name != nil {
			stock.Name = *in.Name
		}
		if in.Symbol != nil {
			stock.Symbol = in.Symbol
		}
		if in.Sector != nil {
			stock.Sector = in.Sector
		}
		if in.Industry != nil {
			stock.Industry = in.Industry
		}
		if in.Notes != nil {
			stock.Notes = in.Notes
		}
		stock.UpdatedAt = now()
		return tx.Save(&stock).Error
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// DeleteStock removes the stock, every holding referencing it and every
// stock-tag link referencing it, in one transaction. Accounts that held
// the stock are untouched.
func (s *Store) DeleteStock(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		holdings := tx.Where("stock_id = ?", id).Delete(&domain.Holding{})
		if holdings.Error != nil {
			return holdings.Error
		}
		if err := tx.Where("stock_id = ?", id).Delete(&domain.StockTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Stock{}).Error; err != nil {
			return err
		}
		log.Debug().Str("stock_id", id).Int64("holdings_removed", holdings.RowsAffected).Msg("stock deleted")
		return nil
	})
}
