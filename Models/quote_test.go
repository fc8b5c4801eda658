package Models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// in-memory sqlite is per-connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, MigrateSchema(db))
	return db
}

func TestNextQuoteNumber_FirstOfYear(t *testing.T) {
	db := openTestDB(t)

	number, err := NextQuoteNumber(db, 2024)
	require.NoError(t, err)
	assert.Equal(t, "PREV2024/0001", number)
}

func TestNextQuoteNumber_Sequence(t *testing.T) {
	db := openTestDB(t)

	for i := 1; i <= 3; i++ {
		number, err := NextQuoteNumber(db, 2024)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("PREV2024/%04d", i), number)
		require.NoError(t, db.Create(&Quote{Number: number, PaymentStatus: PaymentStatusUnpaid}).Error)
	}
}

func TestNextQuoteNumber_YearsAreIndependent(t *testing.T) {
	db := openTestDB(t)

	number, err := NextQuoteNumber(db, 2024)
	require.NoError(t, err)
	require.NoError(t, db.Create(&Quote{Number: number}).Error)

	number, err = NextQuoteNumber(db, 2025)
	require.NoError(t, err)
	assert.Equal(t, "PREV2025/0001", number)
}

func TestQuoteNumberUniqueness(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&Quote{Number: "PREV2024/0001"}).Error)
	err := db.Create(&Quote{Number: "PREV2024/0001"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
