package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stock is a security that can be held in any number of accounts.
// Symbol, sector and industry are optional classification fields.
type Stock struct {
	ID        string  `gorm:"column:id;primaryKey" json:"id"`
	Symbol    *string `gorm:"column:symbol;uniqueIndex" json:"symbol"`
	Name      string  `gorm:"column:name;not null;index" json:"name"`
	Sector    *string `gorm:"column:sector" json:"sector"`
	Industry  *string `gorm:"column:industry" json:"industry"`
	Notes     *string `gorm:"column:notes" json:"notes"`
	CreatedAt int64   `gorm:"column:created_at;not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt int64   `gorm:"column:updated_at;not null;autoUpdateTime:false" json:"updatedAt"`
}

func (Stock) TableName() string {
	return "stocks"
}

func (s *Stock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
