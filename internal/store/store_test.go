package store

import (
	"testing"

	"contacts-api/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory
	// database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.User{}, model.Contact{}))

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, email string) *model.User {
	t.Helper()

	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: "x",
		IsVerified:     true,
	}
	require.NoError(t, db.Create(user).Error)

	return user
}
