package service

import (
	"errors"
	"fmt"
	"time"

	"contacts-api/internal/model"
	"contacts-api/internal/store"

	"gorm.io/gorm"
)

type ContactService struct {
	contacts *store.ContactStore
}

func NewContactService(contacts *store.ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Create persists a contact under its owner. Email and phone must be
// unused by any contact of any user. The Exists pre-check is a fast
// path, the unique constraints catch concurrent duplicates.
func (s *ContactService) Create(c *model.Contact) (*model.Contact, error) {
	exists, err := s.contacts.Exists(c.Email, c.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	if err := s.contacts.Create(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}

		return nil, err
	}

	return c, nil
}

func (s *ContactService) List(userID uint, f store.Filters, skip, limit int) ([]model.Contact, error) {
	return s.contacts.List(userID, f, skip, limit)
}

func (s *ContactService) Get(userID, id uint) (*model.Contact, error) {
	contact, err := s.contacts.ByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	return contact, nil
}

// Update replaces every mutable field of the contact, updated_at is
// refreshed by GORM on save.
func (s *ContactService) Update(userID, id uint, body *model.Contact) (*model.Contact, error) {
	contact, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	contact.Name = body.Name
	contact.Surname = body.Surname
	contact.Email = body.Email
	contact.Phone = body.Phone
	contact.Birthday = body.Birthday
	contact.Info = body.Info

	if err := s.contacts.Save(contact); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}

		return nil, err
	}

	return contact, nil
}

func (s *ContactService) Remove(userID, id uint) error {
	deleted, err := s.contacts.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func (s *ContactService) UpcomingBirthdays(userID uint, days int) ([]model.Contact, error) {
	if days < 0 {
		return nil, fmt.Errorf("days can't be negative")
	}

	return s.contacts.UpcomingBirthdays(userID, days, time.Now())
}
