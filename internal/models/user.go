package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents application user.
//
// TotalIncome and TotalExpense are denormalized running sums over the user's
// transactions. They are maintained by the transaction service and healed by
// the summary path; the transaction log is the source of truth.
type User struct {
	ID             uint            `gorm:"primaryKey"`
	Name           string          `gorm:"size:64;not null"`
	Email          string          `gorm:"size:128;uniqueIndex;not null"`
	PasswordHash   string          `gorm:"size:255;not null"`
	Phone          string          `gorm:"size:32"`
	ProfilePicture string          `gorm:"size:255"`
	TotalIncome    decimal.Decimal `gorm:"type:decimal(20,2);default:0"`
	TotalExpense   decimal.Decimal `gorm:"type:decimal(20,2);default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
