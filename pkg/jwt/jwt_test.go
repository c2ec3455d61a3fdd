package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sign(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() Claims {
	now := time.Now()
	return Claims{
		Username: "ana",
		Role:     "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    "auth",
			Audience:  jwt.ClaimStrings{"smart-reply-srv"},
			ID:        "jti-1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func newManager(t *testing.T) IManager {
	t.Helper()
	m, err := New(Config{SecretKey: testSecret, Issuer: "auth", Audience: []string{"smart-reply-srv"}})
	require.NoError(t, err)
	return m
}

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.ErrorIs(t, err, errSecretKeyTooShort)
}

func TestVerify(t *testing.T) {
	p, err := newManager(t).Verify(sign(t, testSecret, jwt.SigningMethodHS256, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "u-1", p.Subject)
	assert.Equal(t, "ana", p.Username)
	assert.Equal(t, "USER", p.Role)
	assert.Equal(t, "jti-1", p.Id)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerifyRejects(t *testing.T) {
	m := newManager(t)

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"other-srv"}

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"other secret", sign(t, "fedcba9876543210fedcba9876543210", jwt.SigningMethodHS256, validClaims())},
		{"other algorithm", sign(t, testSecret, jwt.SigningMethodHS512, validClaims())},
		{"wrong issuer", sign(t, testSecret, jwt.SigningMethodHS256, wrongIssuer)},
		{"wrong audience", sign(t, testSecret, jwt.SigningMethodHS256, wrongAudience)},
		{"expired", sign(t, testSecret, jwt.SigningMethodHS256, expired)},
		{"no expiry", sign(t, testSecret, jwt.SigningMethodHS256, noExpiry)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestVerifyLeeway(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Leeway: time.Minute})
	require.NoError(t, err)

	c := validClaims()
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-10 * time.Second))
	_, err = m.Verify(sign(t, testSecret, jwt.SigningMethodHS256, c))
	assert.NoError(t, err)
}
