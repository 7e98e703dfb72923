package service

import (
	"sort"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportService produces read-only summary views over a user's transaction
// set. It never mutates the ledger.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// PeriodSummary is the income/expense/net view for an optional month/year.
type PeriodSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// CategoryTotal is one row of the expenses-by-category report.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyTotals is one entry of the income-vs-expense trend series.
type MonthlyTotals struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// fetch loads the user's transactions, optionally restricted to a calendar
// month (month > 0) and/or year (year > 0).
func (s *ReportService) fetch(userID uint, month, year int) ([]models.Transaction, error) {
	q := s.db.Where("user_id = ?", userID)

	switch {
	case month > 0 && year > 0:
		if err := util.ValidateMonthYear(month, year); err != nil {
			return nil, invalid("period", err.Error())
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	case year > 0:
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	case month > 0:
		return nil, invalid("period", "month filter requires a year")
	}

	var txns []models.Transaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Summary aggregates income, expense and net for the period.
func (s *ReportService) Summary(userID uint, month, year int) (*PeriodSummary, error) {
	txns, err := s.fetch(userID, month, year)
	if err != nil {
		return nil, err
	}

	income, expense := decimal.Zero, decimal.Zero
	for i := range txns {
		if txns[i].Type == models.TypeIncome {
			income = income.Add(txns[i].Amount)
		} else {
			expense = expense.Add(txns[i].Amount)
		}
	}
	return &PeriodSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}, nil
}

// ExpensesByCategory groups the period's Expense transactions by category,
// ordered by total descending.
func (s *ReportService) ExpensesByCategory(userID uint, month, year int) ([]CategoryTotal, error) {
	txns, err := s.fetch(userID, month, year)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for i := range txns {
		if txns[i].Type != models.TypeExpense {
			continue
		}
		byCategory[txns[i].Category] = byCategory[txns[i].Category].Add(txns[i].Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}

// IncomeVsExpenseTrend returns a 12-entry series of monthly income and
// expense totals for the given year. Months without transactions are zero.
func (s *ReportService) IncomeVsExpenseTrend(userID uint, year int) ([]MonthlyTotals, error) {
	if year <= 0 {
		year = time.Now().Year()
	}
	txns, err := s.fetch(userID, 0, year)
	if err != nil {
		return nil, err
	}

	series := make([]MonthlyTotals, 12)
	for i := range series {
		series[i] = MonthlyTotals{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	for i := range txns {
		m := int(txns[i].Date.Month()) - 1
		if txns[i].Type == models.TypeIncome {
			series[m].Income = series[m].Income.Add(txns[i].Amount)
		} else {
			series[m].Expense = series[m].Expense.Add(txns[i].Amount)
		}
	}
	return series, nil
}
