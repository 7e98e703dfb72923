package service

import (
	"errors"
	"testing"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
)

func seedExpense(t *testing.T, svc *TransactionService, userID uint, category, amount string, y, m, d int) {
	t.Helper()
	if _, err := svc.Create(userID, TransactionInput{
		Type:     models.TypeExpense,
		Category: category,
		Amount:   dec(amount),
		Date:     date(y, m, d),
	}); err != nil {
		t.Fatalf("seed expense: %v", err)
	}
}

func TestEvaluateStatusThresholds(t *testing.T) {
	budget := models.Budget{LimitAmount: dec("1000")}

	cases := []struct {
		spent      string
		percentage string
		status     string
	}{
		{"800", "80", StatusWarning},      // exactly 80% is already a warning
		{"1000", "100", StatusOverBudget}, // exactly 100% is over budget
		{"799.99", "80", StatusOnTrack},   // displays as 80.00 but is 79.999%
		{"1500", "150", StatusOverBudget},
		{"0", "0", StatusOnTrack},
	}
	for _, tc := range cases {
		view := evaluate(budget, dec(tc.spent))
		if !view.ProgressPercentage.Equal(dec(tc.percentage)) {
			t.Errorf("spent %s: percentage = %s, want %s",
				tc.spent, view.ProgressPercentage, tc.percentage)
		}
		if view.Status != tc.status {
			t.Errorf("spent %s: status = %q, want %q", tc.spent, view.Status, tc.status)
		}
	}
}

func TestEvaluateZeroLimit(t *testing.T) {
	view := evaluate(models.Budget{LimitAmount: dec("0")}, dec("500"))
	if !view.ProgressPercentage.Equal(dec("0")) {
		t.Errorf("percentage = %s, want 0 for zero limit", view.ProgressPercentage)
	}
	if view.Status != StatusOnTrack {
		t.Errorf("status = %q, want %q", view.Status, StatusOnTrack)
	}
}

func TestEvaluateRemaining(t *testing.T) {
	view := evaluate(models.Budget{LimitAmount: dec("1000")}, dec("800"))
	if !view.RemainingAmount.Equal(dec("200")) {
		t.Errorf("remaining = %s, want 200", view.RemainingAmount)
	}
}

func TestSpentAmountScoping(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	other := seedUser(t, db, "b@example.com")
	txnSvc := NewTransactionService(db)
	svc := NewBudgetService(db)

	seedExpense(t, txnSvc, user.ID, "Food", "100", 2025, 5, 10) // counts
	seedExpense(t, txnSvc, user.ID, "Food", "50", 2025, 5, 31)  // counts
	seedExpense(t, txnSvc, user.ID, "Food", "70", 2025, 6, 1)   // other month
	seedExpense(t, txnSvc, user.ID, "Food", "80", 2024, 5, 10)  // same month, other year
	seedExpense(t, txnSvc, user.ID, "food", "90", 2025, 5, 10)  // category is case-sensitive
	seedExpense(t, txnSvc, user.ID, "Transport", "60", 2025, 5, 10)
	seedExpense(t, txnSvc, other.ID, "Food", "500", 2025, 5, 10) // other user

	// income in the same category never counts as spending
	if _, err := txnSvc.Create(user.ID, TransactionInput{
		Type:     models.TypeIncome,
		Category: "Food",
		Amount:   dec("999"),
		Date:     date(2025, 5, 15),
	}); err != nil {
		t.Fatalf("seed income: %v", err)
	}

	spent, err := svc.SpentAmount(user.ID, "Food", 5, 2025)
	if err != nil {
		t.Fatalf("spent amount: %v", err)
	}
	if !spent.Equal(dec("150")) {
		t.Errorf("spent = %s, want 150", spent)
	}
}

func TestCreateBudgetConflict(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	svc := NewBudgetService(db)

	in := BudgetInput{Category: "Food", LimitAmount: dec("1000"), Month: 5, Year: 2025}
	if _, err := svc.Create(user.ID, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// same tuple with a different limit must still conflict
	in.LimitAmount = dec("2000")
	if _, err := svc.Create(user.ID, in); !errors.Is(err, ErrConflict) {
		t.Errorf("second create: err = %v, want ErrConflict", err)
	}

	// a different user may reuse the tuple
	other := seedUser(t, db, "b@example.com")
	if _, err := svc.Create(other.ID, in); err != nil {
		t.Errorf("other user create: %v", err)
	}
}

func TestUpdateBudgetConflictExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	svc := NewBudgetService(db)

	food, err := svc.Create(user.ID, BudgetInput{
		Category: "Food", LimitAmount: dec("1000"), Month: 5, Year: 2025,
	})
	if err != nil {
		t.Fatalf("create food: %v", err)
	}
	if _, err := svc.Create(user.ID, BudgetInput{
		Category: "Transport", LimitAmount: dec("300"), Month: 5, Year: 2025,
	}); err != nil {
		t.Fatalf("create transport: %v", err)
	}

	// updating a budget onto its own tuple is fine
	if _, err := svc.Update(user.ID, food.Budget.ID, BudgetInput{
		Category: "Food", LimitAmount: dec("1200"), Month: 5, Year: 2025,
	}); err != nil {
		t.Errorf("update own tuple: %v", err)
	}

	// moving it onto the other budget's tuple must conflict
	if _, err := svc.Update(user.ID, food.Budget.ID, BudgetInput{
		Category: "Transport", LimitAmount: dec("1200"), Month: 5, Year: 2025,
	}); !errors.Is(err, ErrConflict) {
		t.Errorf("update onto occupied tuple: err = %v, want ErrConflict", err)
	}
}

func TestBudgetValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	svc := NewBudgetService(db)

	var vErr *ValidationError

	cases := []BudgetInput{
		{Category: "Food", LimitAmount: dec("0"), Month: 5, Year: 2025},
		{Category: "Food", LimitAmount: dec("100"), Month: 0, Year: 2025},
		{Category: "Food", LimitAmount: dec("100"), Month: 13, Year: 2025},
		{Category: "Food", LimitAmount: dec("100"), Month: 5, Year: 1999},
		{Category: "Food", LimitAmount: dec("100"), Month: 5, Year: 2101},
		{Category: "", LimitAmount: dec("100"), Month: 5, Year: 2025},
	}
	for i, in := range cases {
		if _, err := svc.Create(user.ID, in); !errors.As(err, &vErr) {
			t.Errorf("case %d: err = %v, want ValidationError", i, err)
		}
	}
}

func TestBudgetListEvaluates(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	txnSvc := NewTransactionService(db)
	svc := NewBudgetService(db)

	if _, err := svc.Create(user.ID, BudgetInput{
		Category: "Food", LimitAmount: dec("1000"), Month: 5, Year: 2025,
	}); err != nil {
		t.Fatalf("create budget: %v", err)
	}
	seedExpense(t, txnSvc, user.ID, "Food", "800", 2025, 5, 10)

	views, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("budgets = %d, want 1", len(views))
	}
	v := views[0]
	if !v.SpentAmount.Equal(dec("800")) {
		t.Errorf("spent = %s, want 800", v.SpentAmount)
	}
	if !v.RemainingAmount.Equal(dec("200")) {
		t.Errorf("remaining = %s, want 200", v.RemainingAmount)
	}
	if v.Status != StatusWarning {
		t.Errorf("status = %q, want %q", v.Status, StatusWarning)
	}
}

func TestBudgetOwnershipAndDelete(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	other := seedUser(t, db, "b@example.com")
	svc := NewBudgetService(db)

	created, err := svc.Create(user.ID, BudgetInput{
		Category: "Food", LimitAmount: dec("1000"), Month: 5, Year: 2025,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.Budget.ID

	if _, err := svc.Get(other.ID, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("get as other: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(other.ID, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete as other: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(user.ID, id); err != nil {
		t.Errorf("delete as owner: %v", err)
	}
	if err := svc.Delete(user.ID, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
