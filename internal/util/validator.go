package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// maxAmount caps a single transaction or limit amount.
var maxAmount = decimal.NewFromInt(10_000_000)

// ValidateAmount checks that a monetary amount is positive and below the cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ParseDate parses a transaction date, accepting RFC3339 and date-only forms.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", dateStr)
}

// ValidateCategory checks that a category label is present and of sane length.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("category is empty")
	}
	if len(category) > 50 {
		return fmt.Errorf("category too long, max 50 characters")
	}
	return nil
}

// ValidateMonthYear checks budget/report period bounds.
func ValidateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 || year > 2100 {
		return fmt.Errorf("year must be between 2000 and 2100, got %d", year)
	}
	return nil
}
