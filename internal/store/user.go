// Package store wraps all database access behind per-model stores
package store

import (
	"errors"

	"contacts-api/internal/model"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// ByID returns nil without an error when no user matches.
func (s *UserStore) ByID(id uint) (*model.User, error) {
	var user model.User

	err := s.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByUsername(username string) (*model.User, error) {
	var user model.User

	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByEmail(email string) (*model.User, error) {
	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// Create persists u. Unique constraint violations come back as
// gorm.ErrDuplicatedKey, the caller decides how to report them.
func (s *UserStore) Create(u *model.User) error {
	return s.db.Create(u).Error
}

// MarkVerified flips is_verified for the user owning email. Flipping
// an already verified user is a no-op, the transition is one-way.
func (s *UserStore) MarkVerified(email string) error {
	return s.db.
		Model(model.User{}).
		Where("email = ?", email).
		Update("is_verified", true).
		Error
}

func (s *UserStore) SetAvatarURL(email, url string) error {
	return s.db.
		Model(model.User{}).
		Where("email = ?", email).
		Update("avatar_url", url).
		Error
}
