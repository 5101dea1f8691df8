package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a free-form label attached to stocks, many-to-many via StockTag.
// Names are unique with case-sensitive exact matching; creating a tag with
// an existing name returns the existing row instead of a duplicate.
type Tag struct {
	ID        string  `gorm:"column:id;primaryKey" json:"id"`
	Name      string  `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Color     *string `gorm:"column:color" json:"color"`
	CreatedAt int64   `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// StockTag links one stock to one tag. The pair is the identity; there is
// no surrogate key.
type StockTag struct {
	StockID string `gorm:"column:stock_id;primaryKey" json:"stockId"`
	TagID   string `gorm:"column:tag_id;primaryKey" json:"tagId"`
}

func (StockTag) TableName() string {
	return "stock_tags"
}
