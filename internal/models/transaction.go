package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is a closed two-valued enumeration.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Opposite returns the other transaction type.
func (t TransactionType) Opposite() TransactionType {
	if t == TypeIncome {
		return TypeExpense
	}
	return TypeIncome
}

// Transaction represents a single income or expense record.
// Amount is stored non-negative; direction is carried by Type.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Type        TransactionType `gorm:"size:16;index;not null"`
	Category    string          `gorm:"size:50;index;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Date        time.Time       `gorm:"index;not null"`
	Description string          `gorm:"size:255"`
	AccountID   *uint           `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User    User     `gorm:"constraint:OnDelete:CASCADE"`
	Account *Account `gorm:"constraint:OnDelete:SET NULL"`
}
