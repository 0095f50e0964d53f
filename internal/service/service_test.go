package service

import (
	"testing"
	"time"

	"contacts-api/config"
	"contacts-api/internal/model"
	"contacts-api/internal/store"
	"contacts-api/pkg/security"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.User{}, model.Contact{}))

	return db
}

// newTestUserService builds a UserService backed by an in-memory
// database. The mail queue has no running workers, jobs just pile up
// in the channel where tests can count them.
func newTestUserService(t *testing.T) (*UserService, *security.Tokens) {
	t.Helper()

	db := newTestDB(t)

	cfg := &config.Config{}
	cfg.Mail.QueueSize = 16

	tokens := security.NewTokens("test-secret", time.Hour, 24*time.Hour)

	svc := NewUserService(
		store.NewUserStore(db),
		security.NewArgon(),
		tokens,
		NewMailQueue(cfg),
		nil,
	)

	return svc, tokens
}

func newTestContactService(t *testing.T) (*ContactService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)

	return NewContactService(store.NewContactStore(db)), db
}

func createOwner(t *testing.T, db *gorm.DB, username, email string) *model.User {
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
