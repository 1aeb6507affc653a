package repository

import (
	"testing"

	"dev404/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
// TranslateError matches the production connection so unique-index violations
// surface as gorm.ErrDuplicatedKey here too.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Section{},
		&models.MediaItem{},
		&models.Signup{},
		&models.ContactMessage{},
	))

	return db
}
