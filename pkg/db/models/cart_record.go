package models

import (
	"time"
)

// CartRecord is the single durable row backing a visitor's cart. The payload
// column holds the whole cart as one JSON array of lines and is overwritten
// in full on every mutation.
type CartRecord struct {
	VisitorID string    `gorm:"column:visitor_id;primaryKey"`
	Payload   string    `gorm:"column:payload;not null;default:'[]'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table name stable across dialects.
func (CartRecord) TableName() string {
	return "cart_records"
}
