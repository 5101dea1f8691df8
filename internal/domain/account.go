package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account is an investment account (e.g. a brokerage or pension account)
// owning zero or more holdings. Account names are not unique.
type Account struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Description *string `gorm:"column:description" json:"description"`
	CreatedAt   int64   `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt   int64   `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate: never insert an empty primary key; generate a random id when not set.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
