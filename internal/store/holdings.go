package store

import (
	"context"
	"errors"

	"stockfolio/internal/domain"

	"gorm.io/gorm"
)

type HoldingCreate struct {
	AccountID    string
	StockID      string
	Shares       float64
	AverageCost  float64
	CurrentPrice float64
	Notes        *string
}

// HoldingUpdate is a partial update; nil fields are left unchanged.
// A present CurrentPrice also refreshes LastPriceUpdate.
type HoldingUpdate struct {
	Shares       *float64
	AverageCost  *float64
	CurrentPrice *float64
	Notes        *string
}

func validatePosition(shares, averageCost, currentPrice float64) error {
	if shares <= 0 {
		return ErrSharesNotPositive
	}
	if averageCost < 0 {
		return ErrNegativeCost
	}
	if currentPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// CreateHolding inserts a new position. It fails with ErrDuplicatePosition
// when a holding for the same (account, stock) pair already exists; the
// existence check and the insert run in one transaction so a failure never
// leaves a partial record behind.
func (s *Store) CreateHolding(ctx context.Context, in HoldingCreate) (*domain.Holding, error) {
	if err := validatePosition(in.Shares, in.AverageCost, in.CurrentPrice); err != nil {
		return nil, err
	}
	ts := now()
	holding := domain.Holding{
		AccountID:       in.AccountID,
		StockID:         in.StockID,
		Shares:          in.Shares,
		AverageCost:     in.AverageCost,
		CurrentPrice:    in.CurrentPrice,
		LastPriceUpdate: ts,
		Notes:           in.Notes,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Holding{}).
			Where("account_id = ? AND stock_id = ?", in.AccountID, in.StockID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePosition
		}
		return tx.Create(&holding).Error
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// GetHolding returns nil (without error) when no holding has the given id.
func (s *Store) GetHolding(ctx context.Context, id string) (*domain.Holding, error) {
	var holding domain.Holding
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &holding, nil
}

func (s *Store) ListHoldings(ctx context.Context) ([]domain.Holding, error) {
	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (s *Store) ListHoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).Where("account_id = ?", accountID).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (s *Store) ListHoldingsByStock(ctx context.Context, stockID string) ([]domain.Holding, error) {
	var holdings []domain.Holding
	if err := s.DB.WithContext(ctx).Where("stock_id = ?", stockID).Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// UpdateHolding merges the provided fields and refreshes UpdatedAt.
// When CurrentPrice is present, LastPriceUpdate is refreshed as well.
// Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateHolding(ctx context.Context, id string, in HoldingUpdate) (*domain.Holding, error) {
	var holding domain.Holding
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&holding).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		ts := now()
		if in.Shares != nil {
			if *in.Shares <= 0 {
				return ErrSharesNotPositive
			}
			holding.Shares = *in.Shares
		}
		if in.AverageCost != nil {
			if *in.AverageCost < 0 {
				return ErrNegativeCost
			}
			holding.AverageCost = *in.AverageCost
		}
		if in.CurrentPrice != nil {
			if *in.CurrentPrice < 0 {
				return ErrNegativePrice
			}
			holding.CurrentPrice = *in.CurrentPrice
			holding.LastPriceUpdate = ts
		}
		if in.Notes != nil {
			holding.Notes = in.Notes
		}
		holding.UpdatedAt = ts
		return tx.Save(&holding).Error
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// DeleteHolding removes one holding. No cascade.
func (s *Store) DeleteHolding(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Holding{}).Error
}
