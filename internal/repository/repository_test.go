package repository

import (
	"testing"
	"time"

	"loan-reconciliation-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func seedLoan(t *testing.T, db *gorm.DB, ccb, status string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Loan{ID: uuid.New(), CCBNumber: ccb, ContractStatus: status}).Error)
}

func seedStock(t *testing.T, db *gorm.DB, doc string) {
	t.Helper()
	require.NoError(t, db.Create(&models.StockLoan{ID: uuid.New(), Document: doc}).Error)
}

func seedSettled(t *testing.T, db *gorm.DB, doc string, date *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.SettledLoan{Document: doc, MovementDate: date}).Error)
}
