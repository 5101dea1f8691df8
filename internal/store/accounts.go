package store

import (
	"context"
	"errors"

	"stockfolio/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AccountCreate carries the caller-supplied fields for a new account.
type AccountCreate struct {
	Name        string
	Description *string
}

// AccountUpdate is a partial update; nil fields are left unchanged.
type AccountUpdate struct {
	Name        *string
	Description *string
}

func (s *Store) CreateAccount(ctx context.Context, in AccountCreate) (*domain.Account, error) {
	ts := now()
	account := domain.Account{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if err := s.DB.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccount returns nil (without error) when no account has the given id.
func (s *Store) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// ListAccounts returns all accounts, newest first.
func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAccount merges the provided fields and refreshes UpdatedAt.
// Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateAccount(ctx context.Context, id string, in AccountUpdate) (*domain.Account, error) {
	var account domain.Account
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if in.Name != nil {
			account.Name = *in.Name
		}
		if in.Description != nil {
			account.Description = in.Description
		}
		account.UpdatedAt = now()
		return tx.Save(&account).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes the account and all of its holdings in one
// transaction. Holdings of other accounts are untouched. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("account_id = ?", id).Delete(&domain.Holding{})
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Account{}).Error; err != nil {
			return err
		}
		log.Debug().Str("account_id", id).Int64("holdings_removed", res.RowsAffected).Msg("account deleted")
		return nil
	})
}
