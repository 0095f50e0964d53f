package store

import (
	"errors"
	"time"

	"contacts-api/internal/model"

	"gorm.io/gorm"
)

// Filters narrows a contact listing. Empty fields are ignored, set
// fields match as a substring of the column (SQL LIKE).
type Filters struct {
	Name    string
	Surname string
	Email   string
}

type ContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) *ContactStore {
	return &ContactStore{db: db}
}

func (s *ContactStore) Create(c *model.Contact) error {
	return s.db.Create(c).Error
}

func (s *ContactStore) List(userID uint, f Filters, skip, limit int) ([]model.Contact, error) {
	q := s.db.Where("user_id = ?", userID)

	if f.Name != "" {
		q = q.Where("name LIKE ?", "%"+f.Name+"%")
	}

	if f.Surname != "" {
		q = q.Where("surname LIKE ?", "%"+f.Surname+"%")
	}

	if f.Email != "" {
		q = q.Where("email LIKE ?", "%"+f.Email+"%")
	}

	var contacts []model.Contact

	err := q.
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&contacts).
		Error
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// ByID returns nil without an error when no contact with that id
// exists under that owner. A foreign contact is indistinguishable
// from an absent one.
func (s *ContactStore) ByID(userID, id uint) (*model.Contact, error) {
	var contact model.Contact

	err := s.db.Where("user_id = ? AND id = ?", userID, id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &contact, nil
}

func (s *ContactStore) Save(c *model.Contact) error {
	return s.db.Save(c).Error
}

// Delete reports whether a row was actually removed.
func (s *ContactStore) Delete(userID, id uint) (bool, error) {
	r := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(model.Contact{})
	if r.Error != nil {
		return false, r.Error
	}

	return r.RowsAffected > 0, nil
}

// Exists checks whether any contact, regardless of owner, already
// uses email or phone.
func (s *ContactStore) Exists(email, phone string) (bool, error) {
	var found bool

	err := s.db.
		Model(model.Contact{}).
		Select("count(*) > 0").
		Where("email = ? OR phone = ?", email, phone).
		Find(&found).
		Error
	if err != nil {
		return false, err
	}

	return found, nil
}

// UpcomingBirthdays returns the owner's contacts whose birthday
// (month/day, year-independent) falls within [now, now+days]
// inclusive. The window check runs in Go so it behaves the same on
// Postgres and the SQLite databases used in tests.
func (s *ContactStore) UpcomingBirthdays(userID uint, days int, now time.Time) ([]model.Contact, error) {
	var contacts []model.Contact

	err := s.db.
		Where("user_id = ?", userID).
		Order("id").
		Find(&contacts).
		Error
	if err != nil {
		return nil, err
	}

	upcoming := contacts[:0]
	for _, c := range contacts {
		if birthdayInWindow(c.Birthday, now, days) {
			upcoming = append(upcoming, c)
		}
	}

	return upcoming, nil
}

// birthdayInWindow reports whether the month/day of birthday matches
// any calendar day in [now, now+days]. Walking the window day by day
// handles December to January wraparound for free.
func birthdayInWindow(birthday, now time.Time, days int) bool {
	for i := 0; i <= days; i++ {
		d := now.AddDate(0, 0, i)
		if d.Month() == birthday.Month() && d.Day() == birthday.Day() {
			return true
		}
	}

	return false
}
