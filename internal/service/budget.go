package service

import (
	"errors"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget status labels. Thresholds are inclusive: exactly 80% is a warning,
// exactly 100% is over budget.
const (
	StatusOnTrack    = "on-track"
	StatusWarning    = "warning"
	StatusOverBudget = "over-budget"
)

var (
	hundred      = decimal.NewFromInt(100)
	warningBound = decimal.NewFromInt(80)
)

// BudgetService manages monthly category budgets. Spent amounts are never
// stored; they are recomputed from the transaction log on every read.
type BudgetService struct {
	db *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{db: db}
}

// BudgetInput carries the client-supplied fields of a budget.
type BudgetInput struct {
	Category    string
	LimitAmount decimal.Decimal
	Month       int
	Year        int
}

// BudgetView is a budget together with its derived spending figures.
type BudgetView struct {
	Budget             models.Budget
	SpentAmount        decimal.Decimal
	RemainingAmount    decimal.Decimal
	ProgressPercentage decimal.Decimal
	Status             string
}

func (in *BudgetInput) validate() error {
	if err := util.ValidateCategory(in.Category); err != nil {
		return invalid("category", err.Error())
	}
	if err := util.ValidateAmount(in.LimitAmount); err != nil {
		return invalid("limitAmount", err.Error())
	}
	if err := util.ValidateMonthYear(in.Month, in.Year); err != nil {
		return invalid("month", err.Error())
	}
	return nil
}

// SpentAmount sums the user's Expense transactions with an exact category
// match whose date falls inside the given calendar month.
func (s *BudgetService) SpentAmount(userID uint, category string, month, year int) (decimal.Decimal, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var txns []models.Transaction
	if err := s.db.
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date < ?",
			userID, models.TypeExpense, category, start, end).
		Find(&txns).Error; err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for i := range txns {
		spent = spent.Add(txns[i].Amount)
	}
	return spent, nil
}

// evaluate derives the spending figures for one budget.
func evaluate(budget models.Budget, spent decimal.Decimal) BudgetView {
	view := BudgetView{
		Budget:          budget,
		SpentAmount:     spent,
		RemainingAmount: budget.LimitAmount.Sub(spent),
	}

	// classify on the exact ratio; the percentage is rounded for display
	// only, so 79.999% shows as 80.00 but stays on-track
	raw := decimal.Zero
	if budget.LimitAmount.GreaterThan(decimal.Zero) {
		raw = spent.Div(budget.LimitAmount).Mul(hundred)
	}
	view.ProgressPercentage = raw.Round(2)

	switch {
	case raw.GreaterThanOrEqual(hundred):
		view.Status = StatusOverBudget
	case raw.GreaterThanOrEqual(warningBound):
		view.Status = StatusWarning
	default:
		view.Status = StatusOnTrack
	}
	return view
}

// existsConflict reports whether another budget already occupies the unique
// (user, category, month, year) tuple. excludeID skips the budget being
// updated.
func (s *BudgetService) existsConflict(userID uint, category string, month, year int, excludeID uint) (bool, error) {
	q := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ? AND year = ?",
			userID, category, month, year)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new budget after rejecting duplicates of the unique tuple.
func (s *BudgetService) Create(userID uint, in BudgetInput) (*BudgetView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	exists, err := s.existsConflict(userID, in.Category, in.Month, in.Year, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	budget := models.Budget{
		UserID:      userID,
		Category:    in.Category,
		LimitAmount: in.LimitAmount,
		Month:       in.Month,
		Year:        in.Year,
	}
	if err := s.db.Create(&budget).Error; err != nil {
		return nil, err
	}

	spent, err := s.SpentAmount(userID, budget.Category, budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}
	view := evaluate(budget, spent)
	return &view, nil
}

// Update rewrites a budget's fields, keeping the unique tuple free of
// duplicates (the budget's own row is excluded from the check).
func (s *BudgetService) Update(userID, id uint, in BudgetInput) (*BudgetView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.existsConflict(userID, in.Category, in.Month, in.Year, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	now := time.Now()
	budget.Category = in.Category
	budget.LimitAmount = in.LimitAmount
	budget.Month = in.Month
	budget.Year = in.Year
	budget.UpdatedAt = &now
	if err := s.db.Save(&budget).Error; err != nil {
		return nil, err
	}

	spent, err := s.SpentAmount(userID, budget.Category, budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}
	view := evaluate(budget, spent)
	return &view, nil
}

// Get returns one evaluated budget scoped to its owner.
func (s *BudgetService) Get(userID, id uint) (*BudgetView, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	spent, err := s.SpentAmount(userID, budget.Category, budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}
	view := evaluate(budget, spent)
	return &view, nil
}

// List returns the user's budgets, newest period first, each evaluated
// against the transaction log.
func (s *BudgetService) List(userID uint) ([]BudgetView, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC, category ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}

	views := make([]BudgetView, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.SpentAmount(userID, budget.Category, budget.Month, budget.Year)
		if err != nil {
			return nil, err
		}
		views = append(views, evaluate(budget, spent))
	}
	return views, nil
}

// Delete removes a budget scoped to its owner.
func (s *BudgetService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Budget{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
