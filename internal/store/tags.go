package store

import (
	"context"
	"errors"

	"stockfolio/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagCreate struct {
	Name  string
	Color *string
}

// CreateTag is idempotent by name: when a tag with the exact same name
// already exists it is returned unchanged and no row is created. Name
// matching is case-sensitive.
func (s *Store) CreateTag(ctx context.Context, in TagCreate) (*domain.Tag, error) {
	var tag domain.Tag
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", in.Name).First(&tag).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		tag = domain.Tag{Name: in.Name, Color: in.Color, CreatedAt: now()}
		return tx.Create(&tag).Error
	})
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetTag returns nil (without error) when no tag has the given id.
func (s *Store) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	var tag domain.Tag
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// GetTagByName returns nil (without error) when no tag has the exact name.
func (s *Store) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// ListTags returns all tags ordered by name ascending.
func (s *Store) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// DeleteTag removes the tag and all of its stock-tag links in one transaction.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := tx.Where("tag_id = ?", id).Delete(&domain.StockTag{})
		if links.Error != nil {
			return links.Error
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Tag{}).Error; err != nil {
			return err
		}
		log.Debug().Str("tag_id", id).Int64("links_removed", links.RowsAffected).Msg("tag deleted")
		return nil
	})
}

// AddTagToStock links a tag to a stock. Adding the same pair twice is a
// no-op, not an error.
func (s *Store) AddTagToStock(ctx context.Context, stockID, tagID string) error {
	link := domain.StockTag{StockID: stockID, TagID: tagID}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// RemoveTagFromStock deletes the link if present, else no-op.
func (s *Store) RemoveTagFromStock(ctx context.Context, stockID, tagID string) error {
	return s.DB.WithContext(ctx).
		Where("stock_id = ? AND tag_id = ?", stockID, tagID).
		Delete(&domain.StockTag{}).Error
}

// ListStockTags returns the resolved tags of one stock, by name ascending.
func (s *Store) ListStockTags(ctx context.Context, stockID string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := s.DB.WithContext(ctx).
		Joins("JOIN stock_tags ON stock_tags.tag_id = tags.id").
		Where("stock_tags.stock_id = ?", stockID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ListStocksByTag returns the stocks carrying one tag, by name ascending.
func (s *Store) ListStocksByTag(ctx context.Context, tagID string) ([]domain.Stock, error) {
	var stocks []domain.Stock
	err := s.DB.WithContext(ctx).
		Joins("JOIN stock_tags ON stock_tags.stock_id = stocks.id").
		Where("stock_tags.tag_id = ?", tagID).
		Order("stocks.name ASC").
		Find(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListAllStockTags returns every stock-tag link, for the tag breakdown and
// the export document.
func (s *Store) ListAllStockTags(ctx context.Context) ([]domain.StockTag, error) {
	var links []domain.StockTag
	if err := s.DB.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
