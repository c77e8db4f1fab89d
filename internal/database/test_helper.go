package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bankist/internal/models"
)

func SetupTestDB(t *testing.T) *Database {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &Database{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *Database) {
	t.Helper()

	tables := []string{
		"movements",
		"accounts",
	}

	for _, table := range tables {
		if err := db.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// CreateTestAccount creates an account with a bcrypt-hashed PIN and the given
// movement amounts, oldest first.
func CreateTestAccount(t *testing.T, db *Database, owner, pin string, rate string, amounts ...string) *models.Account {
	t.Helper()

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test PIN: %v", err)
	}

	var count int64
	if err := db.DB.Model(&models.Account{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count accounts: %v", err)
	}

	account := &models.Account{
		Owner:        owner,
		PINHash:      string(pinHash),
		InterestRate: decimal.RequireFromString(rate),
		Position:     int(count),
	}

	base := time.Date(2020, 7, 1, 12, 0, 0, 0, time.UTC)
	for i, raw := range amounts {
		account.Movements = append(account.Movements, models.Movement{
			Amount:     decimal.RequireFromString(raw),
			OccurredAt: base.Add(time.Duration(i) * 24 * time.Hour),
			Position:   i,
		})
	}

	if err := db.DB.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// SeedTestAccounts loads the two canonical demo accounts.
func SeedTestAccounts(t *testing.T, db *Database) {
	t.Helper()

	if err := Seed(db.DB, bcrypt.MinCost); err != nil {
		t.Fatalf("failed to seed test accounts: %v", err)
	}
}
