package service

import (
	"errors"
	"testing"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
)

func TestAccountCRUD(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	svc := NewAccountService(db)

	account, err := svc.Create(user.ID, AccountInput{
		Name:    "Main",
		Type:    "Checking",
		Balance: dec("250"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !account.Balance.Equal(dec("250")) {
		t.Errorf("opening balance = %s, want 250", account.Balance)
	}

	updated, err := svc.Update(user.ID, account.ID, AccountInput{
		Name: "Main renamed",
		Type: "Savings",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Main renamed" || updated.Type != "Savings" {
		t.Errorf("update did not apply: %+v", updated)
	}
	// rename must not move the balance
	if !updated.Balance.Equal(dec("250")) {
		t.Errorf("balance after rename = %s, want 250", updated.Balance)
	}

	if err := svc.Delete(user.ID, account.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(user.ID, account.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestAccountDeleteRefusedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	accountSvc := NewAccountService(db)
	txnSvc := NewTransactionService(db)

	account, err := accountSvc.Create(user.ID, AccountInput{
		Name: "Main", Type: "Checking", Balance: dec("100"),
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	txn, err := txnSvc.Create(user.ID, TransactionInput{
		Type:      models.TypeExpense,
		Category:  "Food",
		Amount:    dec("10"),
		Date:      date(2025, 5, 1),
		AccountID: &account.ID,
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	if err := accountSvc.Delete(user.ID, account.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("delete while referenced: err = %v, want ErrConflict", err)
	}

	if err := txnSvc.Delete(user.ID, txn.ID); err != nil {
		t.Fatalf("delete transaction: %v", err)
	}
	if err := accountSvc.Delete(user.ID, account.ID); err != nil {
		t.Errorf("delete after transactions gone: %v", err)
	}
}

func TestAccountOwnership(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")
	other := seedUser(t, db, "b@example.com")
	svc := NewAccountService(db)

	account, err := svc.Create(user.ID, AccountInput{
		Name: "Main", Type: "Checking",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(other.ID, account.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get as other: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(other.ID, account.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete as other: err = %v, want ErrNotFound", err)
	}
}
