package database

import (
	"fmt"
	"testing"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the investment schema
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would see its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// SeedTestDataset inserts one client, one product and one investment of 12000
// on serial day 1
func SeedTestDataset(t *testing.T, db *DB) {
	t.Helper()

	rows := []interface{}{
		&models.Client{ID: 1, Name: "Ana", City: "SP"},
		&models.Product{ID: 100, Name: "CDB", Category: "Fixed Income"},
		&models.Investment{ID: 1, ClientID: 1, ProductID: 100, Amount: decimal.NewFromInt(12000), SerialDate: 1},
	}

	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed test dataset: %v", err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"investments", "products", "clients"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
