package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a money account (e.g. Checking, Savings).
// Balance is mutated only through transaction application.
type Account struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"index;not null"`
	Name      string          `gorm:"size:64;not null"`
	Type      string          `gorm:"size:32;not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,2);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
