package store

import (
	"testing"
	"time"

	"contacts-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBirthdayInWindow(t *testing.T) {
	// A 7 day window on 2024-12-29 spans the year boundary
	now := date(2024, time.December, 29)

	assert.True(t, birthdayInWindow(date(2001, time.January, 3), now, 7))
	assert.True(t, birthdayInWindow(date(1985, time.December, 29), now, 7))
	assert.True(t, birthdayInWindow(date(1999, time.January, 5), now, 7))
	assert.False(t, birthdayInWindow(date(1990, time.January, 6), now, 7))
	assert.False(t, birthdayInWindow(date(1990, time.December, 28), now, 7))

	// days=0 means today only
	assert.True(t, birthdayInWindow(date(1970, time.December, 29), now, 0))
	assert.False(t, birthdayInWindow(date(1970, time.December, 30), now, 0))
}

func TestUpcomingBirthdays(t *testing.T) {
	db := newTestDB(t)
	s := NewContactStore(db)
	owner := newTestUser(t, db, "alice", "alice@x.com")
	other := newTestUser(t, db, "bob", "bob@x.com")

	mk := func(name, email, phone string, birthday time.Time, userID uint) {
		require.NoError(t, s.Create(&model.Contact{
			Name:     name,
			Surname:  "Test",
			Email:    email,
			Phone:    phone,
			Birthday: birthday,
			UserID:   userID,
		}))
	}

	mk("InWindow", "a@x.com", "+15550000001", date(2001, time.January, 3), owner.ID)
	mk("OutOfWindow", "b@x.com", "+15550000002", date(1990, time.January, 6), owner.ID)
	mk("ForeignOwner", "c@x.com", "+15550000003", date(2001, time.January, 3), other.ID)

	now := date(2024, time.December, 29)

	upcoming, err := s.UpcomingBirthdays(owner.ID, 7, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "InWindow", upcoming[0].Name)
}

func TestContactUniqueAcrossOwners(t *testing.T) {
	db := newTestDB(t)
	s := NewContactStore(db)
	alice := newTestUser(t, db, "alice", "alice@x.com")
	bob := newTestUser(t, db, "bob", "bob@x.com")

	require.NoError(t, s.Create(&model.Contact{
		Name:     "Bob",
		Surname:  "Lee",
		Email:    "bob.lee@x.com",
		Phone:    "+15551234567",
		Birthday: date(1990, time.May, 1),
		UserID:   alice.ID,
	}))

	// Same phone under a different owner still violates the
	// table-wide constraint
	err := s.Create(&model.Contact{
		Name:     "Robert",
		Surname:  "Lee",
		Email:    "robert.lee@x.com",
		Phone:    "+15551234567",
		Birthday: date(1990, time.May, 1),
		UserID:   bob.ID,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := s.Exists("nobody@x.com", "+15551234567")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists("bob.lee@x.com", "+19999999999")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists("nobody@x.com", "+19999999999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContactOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	s := NewContactStore(db)
	alice := newTestUser(t, db, "alice", "alice@x.com")
	bob := newTestUser(t, db, "bob", "bob@x.com")

	contact := &model.Contact{
		Name:     "Bob",
		Surname:  "Lee",
		Email:    "bob.lee@x.com",
		Phone:    "+15551234567",
		Birthday: date(1990, time.May, 1),
		UserID:   alice.ID,
	}
	require.NoError(t, s.Create(contact))

	mine, err := s.ByID(alice.ID, contact.ID)
	require.NoError(t, err)
	require.NotNil(t, mine)

	foreign, err := s.ByID(bob.ID, contact.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	deleted, err := s.Delete(bob.ID, contact.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.Delete(alice.ID, contact.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestContactListFilters(t *testing.T) {
	db := newTestDB(t)
	s := NewContactStore(db)
	alice := newTestUser(t, db, "alice", "alice@x.com")

	mk := func(name, surname, email, phone string) {
		require.NoError(t, s.Create(&model.Contact{
			Name:     name,
			Surname:  surname,
			Email:    email,
			Phone:    phone,
			Birthday: date(1990, time.May, 1),
			UserID:   alice.ID,
		}))
	}

	mk("John", "Doe", "john@x.com", "+15550000001")
	mk("Johnny", "Smith", "johnny@x.com", "+15550000002")
	mk("Jane", "Doe", "jane@x.com", "+15550000003")

	// Substring match on a single field
	got, err := s.List(alice.ID, Filters{Name: "John"}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// All supplied filters must match
	got, err = s.List(alice.ID, Filters{Name: "John", Surname: "Doe"}, 0, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "john@x.com", got[0].Email)

	got, err = s.List(alice.ID, Filters{Email: "jane@"}, 0, 100)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Pagination
	got, err = s.List(alice.ID, Filters{}, 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
