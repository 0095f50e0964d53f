package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("secret1"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("x", 256)), ErrPasswordTooLong)
}

func TestUsernameValidator(t *testing.T) {
	assert.NoError(t, UsernameValidator("alice"))
	assert.ErrorIs(t, UsernameValidator(""), ErrUsernameEmpty)
	assert.ErrorIs(t, UsernameValidator("al"), ErrUsernameTooShort)
	assert.ErrorIs(t, UsernameValidator(strings.Repeat("x", 51)), ErrUsernameTooLong)
}

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("alice@x.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("nope"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator(strings.Repeat("x", 95)+"@x.com"), ErrEmailTooLong)
}
