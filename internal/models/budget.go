package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for one category.
// The tuple (user_id, category, month, year) is unique; spent/remaining/
// status are never stored, always recomputed from the transaction log.
type Budget struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;uniqueIndex:idx_budget_tuple"`
	Category    string          `gorm:"size:50;not null;uniqueIndex:idx_budget_tuple"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Month       int             `gorm:"not null;uniqueIndex:idx_budget_tuple"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budget_tuple"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
