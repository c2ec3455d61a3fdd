package scope

import jwtv3 "github.com/golang-jwt/jwt"

// Payload is the verified content of an access token.
type Payload struct {
	jwtv3.StandardClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager verifies tokens carrying a Payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type scopeKey struct{}

