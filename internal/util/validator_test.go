package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount string
		ok     bool
	}{
		{"0.01", true},
		{"100", true},
		{"9999999.99", true},
		{"0", false},
		{"-5", false},
		{"10000000", false},
	}
	for _, c := range cases {
		err := ValidateAmount(decimal.RequireFromString(c.amount))
		if (err == nil) != c.ok {
			t.Errorf("ValidateAmount(%s): err = %v, want ok=%v", c.amount, err, c.ok)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-15", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-03-15T10:30:00", time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2025-03-15T10:30:00Z", time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "15/03/2025", "not a date"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q): want error", in)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	if err := ValidateCategory("Groceries"); err != nil {
		t.Errorf("valid category: %v", err)
	}
	if err := ValidateCategory(""); err == nil {
		t.Error("empty category: want error")
	}
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateCategory(string(long)); err == nil {
		t.Error("over-long category: want error")
	}
}

func TestValidateMonthYear(t *testing.T) {
	cases := []struct {
		month, year int
		ok          bool
	}{
		{1, 2025, true},
		{12, 2000, true},
		{0, 2025, false},
		{13, 2025, false},
		{6, 1999, false},
		{6, 2101, false},
	}
	for _, c := range cases {
		err := ValidateMonthYear(c.month, c.year)
		if (err == nil) != c.ok {
			t.Errorf("ValidateMonthYear(%d, %d): err = %v, want ok=%v", c.month, c.year, err, c.ok)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if _, err := ParseToken("wrong-secret", token); err == nil {
		t.Error("wrong secret: want error")
	}
}
