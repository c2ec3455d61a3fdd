package jwt

import "errors"

var (
	errSecretKeyTooShort = errors.New("jwt: secret key must be at least 32 characters")
	errInvalidToken      = errors.New("jwt: invalid token")
)
