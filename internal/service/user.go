package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	a "contacts-api/aws"
	"contacts-api/internal/model"
	"contacts-api/internal/store"
	"contacts-api/pkg/security"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotVerified is rejected logins from accounts that never confirmed
// their email. Reported as 401 like any other failed login.
var ErrNotVerified = errors.New("email not verified")

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var ErrUnsupportedAvatar = errors.New("avatar must be a jpeg, png or webp image")

type UserService struct {
	users  *store.UserStore
	argon  *security.ArgonHash
	tokens *security.Tokens
	mail   *MailQueue
	s3     *a.S3Client
}

func NewUserService(users *store.UserStore, argon *security.ArgonHash, tokens *security.Tokens, mail *MailQueue, s3c *a.S3Client) *UserService {
	return &UserService{
		users:  users,
		argon:  argon,
		tokens: tokens,
		mail:   mail,
		s3:     s3c,
	}
}

// Register creates an unverified user and schedules the verification
// email. The existence pre-checks are a fast path only, concurrent
// duplicate registrations are caught by the unique constraints.
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	existing, err := s.users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this email already exists: %w", ErrConflict)
	}

	existing, err = s.users.ByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with this username already exists: %w", ErrConflict)
	}

	hash, err := s.argon.GenerateFromPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password, %w", err)
	}

	user := &model.User{
		Username:       username,
		Email:          email,
		HashedPassword: hash,
		IsVerified:     false,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user with this email or username already exists: %w", ErrConflict)
		}

		return nil, err
	}

	s.scheduleVerification(user)

	return user, nil
}

// Login checks the credentials and returns an access token. Absent
// user, wrong password and unconfirmed email all fail the same way
// from the caller's point of view.
func (s *UserService) Login(username, password string) (string, error) {
	user, err := s.users.ByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUnauthorized
	}

	ok, err := s.argon.VerifyPasswd(password, user.HashedPassword)
	if err != nil {
		return "", fmt.Errorf("failed to verify password, %w", err)
	}
	if !ok {
		return "", ErrUnauthorized
	}

	if !user.IsVerified {
		return "", ErrNotVerified
	}

	return s.tokens.Access(user.Username)
}

// ConfirmEmail decodes a verification token and flips the user to
// verified. Repeat confirmations report already=true and change
// nothing.
func (s *UserService) ConfirmEmail(token string) (already bool, err error) {
	email, err := s.tokens.Decode(token)
	if err != nil {
		return false, err
	}

	user, err := s.users.ByEmail(email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, security.ErrInvalidToken
	}

	if user.IsVerified {
		return true, nil
	}

	return false, s.users.MarkVerified(email)
}

// ResendVerification schedules another verification email when the
// address belongs to an unverified user. The outcome is identical
// either way so the endpoint can't be used to probe for accounts.
func (s *UserService) ResendVerification(email string) error {
	user, err := s.users.ByEmail(email)
	if err != nil {
		return err
	}

	if user == nil || user.IsVerified {
		return nil
	}

	s.scheduleVerification(user)

	return nil
}

// UpdateAvatar uploads the image to S3 and stores the resulting URL
// on the user.
func (s *UserService) UpdateAvatar(ctx context.Context, user *model.User, body io.Reader, size int64, contentType string) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedAvatar
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate avatar key, %w", err)
	}

	key := "avatars/" + id + ext

	_, err = s.s3.C.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        s.s3.Bucket,
		Key:           awssdk.String(key),
		Body:          body,
		ContentLength: awssdk.Int64(size),
		ContentType:   awssdk.String(contentType),
		CacheControl:  awssdk.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar to S3, %w", err)
	}

	url := s.s3.ObjectURL(key)

	if err := s.users.SetAvatarURL(user.Email, url); err != nil {
		return "", err
	}

	return url, nil
}

// scheduleVerification is fire and forget. Any failure here is logged
// and never fails the request that triggered it.
func (s *UserService) scheduleVerification(user *model.User) {
	token, err := s.tokens.Verification(user.Email)
	if err != nil {
		zap.L().Error("Failed to generate verification token",
			zap.String("email", user.Email),
			zap.Error(err))
		return
	}

	err = s.mail.Enqueue(&MailJob{
		To:       user.Email,
		Username: user.Username,
		Token:    token,
	})
	if err != nil {
		zap.L().Error("Failed to enqueue verification email",
			zap.String("email", user.Email),
			zap.Error(err))
	}
}
