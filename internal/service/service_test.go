package service

import (
	"testing"

	"github.com/Anuradha-Herath/FinTrack/internal/database"
	"github.com/Anuradha-Herath/FinTrack/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	// a single connection keeps all statements on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedAccount(t *testing.T, db *gorm.DB, userID uint, balance string) *models.Account {
	t.Helper()
	account := models.Account{
		UserID:  userID,
		Name:    "Checking",
		Type:    "Checking",
		Balance: dec(balance),
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return &account
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) *models.User {
	t.Helper()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return &user
}

func reloadAccount(t *testing.T, db *gorm.DB, id uint) *models.Account {
	t.Helper()
	var account models.Account
	if err := db.First(&account, id).Error; err != nil {
		t.Fatalf("reload account: %v", err)
	}
	return &account
}
