package validators

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrNameLength     = errors.New("name must be between 2 and 50 characters long")
	ErrSurnameLength  = errors.New("surname must be between 2 and 50 characters long")
	ErrPhoneInvalid   = errors.New("phone number must be in international format (e.g., +380501234567)")
	ErrBirthdayFormat = errors.New("birthday must be a date in YYYY-MM-DD format")
	ErrBirthdayFuture = errors.New("birthday cannot be in the future")
	ErrInfoTooLong    = errors.New("info must be at most 500 characters long")
)

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ContactBody is the validated shape shared by the create and update
// contact endpoints.
type ContactBody struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Info     string `json:"info"`
}

// ContactValidator checks every field of b and returns the parsed
// birthday on success.
func ContactValidator(b *ContactBody) (time.Time, error) {
	if len(b.Name) < 2 || len(b.Name) > 50 {
		return time.Time{}, ErrNameLength
	}

	if len(b.Surname) < 2 || len(b.Surname) > 50 {
		return time.Time{}, ErrSurnameLength
	}

	if err := EmailValidator(b.Email); err != nil {
		return time.Time{}, err
	}

	if !phoneRegex.MatchString(b.Phone) {
		return time.Time{}, ErrPhoneInvalid
	}

	birthday, err := time.Parse("2006-01-02", b.Birthday)
	if err != nil {
		return time.Time{}, ErrBirthdayFormat
	}

	if birthday.After(time.Now()) {
		return time.Time{}, ErrBirthdayFuture
	}

	if len(b.Info) > 500 {
		return time.Time{}, ErrInfoTooLong
	}

	return birthday, nil
}
