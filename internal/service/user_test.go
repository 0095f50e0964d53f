package service

import (
	"context"
	"testing"

	"contacts-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	// Different username, same email
	_, err = svc.Register("alice2", "alice@x.com", "secret1")
	assert.ErrorIs(t, err, ErrConflict)

	// Same username, different email
	_, err = svc.Register("alice", "alice2@x.com", "secret1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterSchedulesVerificationMail(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "secret1", user.HashedPassword)

	assert.Len(t, svc.mail.jobs, 1)
}

func TestLoginRequiresVerification(t *testing.T) {
	svc, tokens := newTestUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login("alice", "secret1")
	assert.ErrorIs(t, err, ErrNotVerified)

	verifToken, err := tokens.Verification("alice@x.com")
	require.NoError(t, err)

	already, err := svc.ConfirmEmail(verifToken)
	require.NoError(t, err)
	assert.False(t, already)

	accessToken, err := svc.Login("alice", "secret1")
	require.NoError(t, err)

	sub, err := tokens.Decode(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, tokens := newTestUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	verifToken, err := tokens.Verification("alice@x.com")
	require.NoError(t, err)
	_, err = svc.ConfirmEmail(verifToken)
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login("nobody", "secret1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestConfirmEmailIdempotent(t *testing.T) {
	svc, tokens := newTestUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	verifToken, err := tokens.Verification("alice@x.com")
	require.NoError(t, err)

	already, err := svc.ConfirmEmail(verifToken)
	require.NoError(t, err)
	assert.False(t, already)

	already, err = svc.ConfirmEmail(verifToken)
	require.NoError(t, err)
	assert.True(t, already)
}

func TestConfirmEmailBadToken(t *testing.T) {
	svc, tokens := newTestUserService(t)

	_, err := svc.ConfirmEmail("garbage")
	assert.ErrorIs(t, err, security.ErrInvalidToken)

	// Valid signature but no matching user
	verifToken, err := tokens.Verification("nobody@x.com")
	require.NoError(t, err)

	_, err = svc.ConfirmEmail(verifToken)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestResendVerificationNoLeak(t *testing.T) {
	svc, tokens := newTestUserService(t)

	_, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.Len(t, svc.mail.jobs, 1)

	// Unknown address succeeds without queueing anything
	require.NoError(t, svc.ResendVerification("nobody@x.com"))
	assert.Len(t, svc.mail.jobs, 1)

	// Unverified user gets another email
	require.NoError(t, svc.ResendVerification("alice@x.com"))
	assert.Len(t, svc.mail.jobs, 2)

	// Verified user does not
	verifToken, err := tokens.Verification("alice@x.com")
	require.NoError(t, err)
	_, err = svc.ConfirmEmail(verifToken)
	require.NoError(t, err)

	require.NoError(t, svc.ResendVerification("alice@x.com"))
	assert.Len(t, svc.mail.jobs, 2)
}

func TestUpdateAvatarRejectsBadType(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.UpdateAvatar(context.Background(), user, nil, 0, "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedAvatar)
}
