package service

import (
	"errors"

	"github.com/Anuradha-Herath/FinTrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountService manages money accounts. The opening balance is set at
// creation; afterwards the balance moves only through the ledger engine.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// AccountInput carries the client-supplied fields of an account.
type AccountInput struct {
	Name    string
	Type    string
	Balance decimal.Decimal
}

func (in *AccountInput) validate() error {
	if in.Name == "" {
		return invalid("name", "name is required")
	}
	if in.Type == "" {
		return invalid("type", "type is required")
	}
	return nil
}

// Create opens a new account with the given opening balance.
func (s *AccountService) Create(userID uint, in AccountInput) (*models.Account, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	account := models.Account{
		UserID:  userID,
		Name:    in.Name,
		Type:    in.Type,
		Balance: in.Balance,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Update renames or retypes an account. The balance is deliberately not
// client-writable here; only transaction application moves it.
func (s *AccountService) Update(userID, id uint, in AccountInput) (*models.Account, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	account, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	account.Name = in.Name
	account.Type = in.Type
	if err := s.db.Save(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// Get returns one account scoped to its owner.
func (s *AccountService) Get(userID, id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// List returns the user's accounts.
func (s *AccountService) List(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Delete removes an account. It refuses while live transactions still
// reference the account, so deleting can never silently detach ledger rows.
func (s *AccountService) Delete(userID, id uint) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).
		Where("account_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	return s.db.Delete(&models.Account{}, id).Error
}
