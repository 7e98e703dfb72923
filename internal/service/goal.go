package service

import (
	"errors"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalService manages savings goals.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// GoalInput carries the client-supplied fields of a goal.
type GoalInput struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Description   string
}

func (in *GoalInput) validate() error {
	if in.Title == "" {
		return invalid("title", "title is required")
	}
	if err := util.ValidateAmount(in.TargetAmount); err != nil {
		return invalid("targetAmount", err.Error())
	}
	if in.CurrentAmount.IsNegative() {
		return invalid("currentAmount", "must not be negative")
	}
	if in.Deadline.IsZero() {
		return invalid("deadline", "deadline is required")
	}
	return nil
}

// Progress returns the goal's completion percentage, uncapped (an overfunded
// goal reads above 100). A zero or negative target yields 0.
func Progress(goal *models.Goal) decimal.Decimal {
	if !goal.TargetAmount.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred).Round(2)
}

// Create persists a new goal for the user.
func (s *GoalService) Create(userID uint, in GoalInput) (*models.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	goal := models.Goal{
		UserID:        userID,
		Title:         in.Title,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
		Description:   in.Description,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Update rewrites a goal's fields, scoped to its owner.
func (s *GoalService) Update(userID, id uint, in GoalInput) (*models.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	goal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	goal.Title = in.Title
	goal.TargetAmount = in.TargetAmount
	goal.CurrentAmount = in.CurrentAmount
	goal.Deadline = in.Deadline
	goal.Description = in.Description
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// AddAmount increments the goal's saved amount. Goals are manual savings
// jars; this never touches the transaction log or any account balance.
func (s *GoalService) AddAmount(userID, id uint, amount decimal.Decimal) (*models.Goal, error) {
	if err := util.ValidateAmount(amount); err != nil {
		return nil, invalid("amount", err.Error())
	}

	goal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// Get returns one goal scoped to its owner.
func (s *GoalService) Get(userID, id uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// List returns the user's goals ordered by deadline.
func (s *GoalService) List(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).
		Order("deadline ASC, id ASC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// Delete removes a goal scoped to its owner.
func (s *GoalService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
