package service

import (
	"errors"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionService owns the transaction log and keeps the denormalized
// aggregates (account balance, user income/expense totals) consistent with
// it. Every mutation runs its full revert+apply sequence inside a single
// database transaction so a failure can never leave the aggregates half
// updated.
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// TransactionInput carries the client-supplied fields of a transaction.
type TransactionInput struct {
	Type        models.TransactionType
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	AccountID   *uint
}

// TransactionFilter restricts List. Nil/empty fields are ignored.
type TransactionFilter struct {
	Type      models.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// Summary is the self-healed totals view for one user.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

func (in *TransactionInput) validate() error {
	if !in.Type.Valid() {
		return invalid("type", "must be Income or Expense")
	}
	if err := util.ValidateCategory(in.Category); err != nil {
		return invalid("category", err.Error())
	}
	if err := util.ValidateAmount(in.Amount); err != nil {
		return invalid("amount", err.Error())
	}
	return nil
}

// applyDelta applies one transaction's effect on the aggregates: Income adds
// to the account balance and the user's TotalIncome, Expense subtracts from
// the balance and adds to TotalExpense. The account side is skipped when no
// account is referenced. Reverting is applyDelta with the negated amount,
// which inverts both sides at once and keeps apply/revert symmetric by
// construction.
func applyDelta(tx *gorm.DB, userID uint, accountID *uint, typ models.TransactionType, amount decimal.Decimal) error {
	if accountID != nil {
		var account models.Account
		if err := tx.Where("id = ? AND user_id = ?", *accountID, userID).
			First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if typ == models.TypeIncome {
			account.Balance = account.Balance.Add(amount)
		} else {
			account.Balance = account.Balance.Sub(amount)
		}
		if err := tx.Save(&account).Error; err != nil {
			return err
		}
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}
	if typ == models.TypeIncome {
		user.TotalIncome = user.TotalIncome.Add(amount)
	} else {
		user.TotalExpense = user.TotalExpense.Add(amount)
	}
	return tx.Save(&user).Error
}

func revertDelta(tx *gorm.DB, userID uint, accountID *uint, typ models.TransactionType, amount decimal.Decimal) error {
	return applyDelta(tx, userID, accountID, typ, amount.Neg())
}

// Create persists a new transaction for the user and applies its deltas.
func (s *TransactionService) Create(userID uint, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	txn := models.Transaction{
		UserID:      userID,
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		AccountID:   in.AccountID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return applyDelta(tx, userID, txn.AccountID, txn.Type, txn.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update replaces a transaction's fields, reverting the old deltas before
// applying the new ones. Revert fully precedes apply; both run in the same
// database transaction.
func (s *TransactionService) Update(userID, id uint, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var txn models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).
			First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := revertDelta(tx, userID, txn.AccountID, txn.Type, txn.Amount); err != nil {
			return err
		}

		txn.Type = in.Type
		txn.Category = in.Category
		txn.Amount = in.Amount
		if !in.Date.IsZero() {
			txn.Date = in.Date
		}
		txn.Description = in.Description
		txn.AccountID = in.AccountID
		if err := tx.Save(&txn).Error; err != nil {
			return err
		}

		return applyDelta(tx, userID, txn.AccountID, txn.Type, txn.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Delete reverts a transaction's deltas and removes the row.
func (s *TransactionService) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.Where("id = ? AND user_id = ?", id, userID).
			First(&txn).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := revertDelta(tx, userID, txn.AccountID, txn.Type, txn.Amount); err != nil {
			return err
		}
		return tx.Delete(&txn).Error
	})
}

// Get returns one transaction scoped to its owner.
func (s *TransactionService) Get(userID, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).
		First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// List returns the user's transactions, newest first, after applying the
// filter. The end date is treated as inclusive (end of that day).
func (s *TransactionService) List(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	q := s.db.Where("user_id = ?", userID)
	if filter.Type.Valid() {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date < ?", filter.EndDate.Add(24*time.Hour))
	}

	var txns []models.Transaction
	if err := q.Order("date DESC, id DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// Summary recomputes the user's totals from the live transaction set and
// heals the stored totals if they drifted, then returns the fresh view.
func (s *TransactionService) Summary(userID uint) (*Summary, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&txns).Error; err != nil {
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

	if !income.Equal(user.TotalIncome) || !expense.Equal(user.TotalExpense) {
		user.TotalIncome = income
		user.TotalExpense = expense
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
	}

	return &Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}, nil
}
