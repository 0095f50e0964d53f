package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can be rejected: bad
// signature, wrong algorithm, malformed payload or expiry in the past.
var ErrInvalidToken = errors.New("token invalid or expired")

// Tokens issues and decodes signed HS256 tokens. Access tokens and
// email verification tokens share the encoding and differ only in TTL.
// Tokens are stateless, expiry is the only invalidation mechanism.
type Tokens struct {
	secret    []byte
	AccessTTL time.Duration
	VerifyTTL time.Duration
}

func NewTokens(secret string, accessTTL, verifyTTL time.Duration) *Tokens {
	return &Tokens{
		secret:    []byte(secret),
		AccessTTL: accessTTL,
		VerifyTTL: verifyTTL,
	}
}

// Issue signs a token carrying sub as the subject claim, valid for ttl.
func (t *Tokens) Issue(sub string, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	return token.SignedString(t.secret)
}

// Access issues a short-lived token proving an authenticated session.
func (t *Tokens) Access(sub string) (string, error) {
	return t.Issue(sub, t.AccessTTL)
}

// Verification issues a token proving ownership of an email address.
func (t *Tokens) Verification(sub string) (string, error) {
	return t.Issue(sub, t.VerifyTTL)
}

// Decode returns the subject claim of tokenStr or ErrInvalidToken.
func (t *Tokens) Decode(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (any, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
