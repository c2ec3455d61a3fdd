package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the settings used to verify access tokens issued by the auth service.
// Issuer and Audience are checked only when set. Leeway absorbs clock skew on exp/nbf/iat.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	Leeway    time.Duration
}

type managerImpl struct {
	secretKey []byte
	parser    *jwt.Parser
}

// Claims are the access token claims this service reads. The user id is the subject.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
