package service

import (
	"errors"
	"testing"

	"github.com/Anuradha-Herath/FinTrack/internal/util"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 1)

	user, err := svc.Register("Alice", "alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Fatal("password stored in plaintext")
	}

	got, token, err := svc.Login("alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("login user id = %d, want %d", got.ID, user.ID)
	}

	claims, err := util.ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, user.ID)
	}

	// email match is case-insensitive
	if _, _, err := svc.Login("ALICE@example.com", "s3cretpass"); err != nil {
		t.Errorf("case-insensitive login: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 1)

	if _, err := svc.Register("Alice", "alice@example.com", "s3cretpass"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register("Other", "Alice@Example.com", "otherpass1"); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate email: err = %v, want ErrConflict", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 1)

	if _, err := svc.Register("Alice", "alice@example.com", "s3cretpass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login("alice@example.com", "wrongpass1"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong password: err = %v, want ErrBadCredentials", err)
	}
	// unknown email must fail the same way as a wrong password
	if _, _, err := svc.Login("nobody@example.com", "s3cretpass"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("unknown email: err = %v, want ErrBadCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 1)

	var vErr *ValidationError

	if _, err := svc.Register("", "a@example.com", "s3cretpass"); !errors.As(err, &vErr) {
		t.Errorf("empty name: err = %v, want ValidationError", err)
	}
	if _, err := svc.Register("Alice", "not-an-email", "s3cretpass"); !errors.As(err, &vErr) {
		t.Errorf("bad email: err = %v, want ValidationError", err)
	}
	if _, err := svc.Register("Alice", "a@example.com", "short"); !errors.As(err, &vErr) {
		t.Errorf("short password: err = %v, want ValidationError", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 1)

	user, err := svc.Register("Alice", "alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrongpass1", "newpassword"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("wrong current password: err = %v, want ErrBadCredentials", err)
	}
	if err := svc.ChangePassword(user.ID, "s3cretpass", "newpassword"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login("alice@example.com", "newpassword"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := svc.Login("alice@example.com", "s3cretpass"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("old password still works: err = %v", err)
	}
}
