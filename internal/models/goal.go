package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a manual savings jar. CurrentAmount is incremented by the user,
// never derived from the transaction log.
type Goal struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"index;not null"`
	Title         string          `gorm:"size:100;not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(20,2);default:0"`
	Deadline      time.Time       `gorm:"not null"`
	Description   string          `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
