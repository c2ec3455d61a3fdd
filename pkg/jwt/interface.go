package jwt

import (
	"smart-reply-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

// IManager verifies HS256 access tokens. It satisfies scope.Manager.
// Implementations are safe for concurrent use.
type IManager interface {
	Verify(token string) (scope.Payload, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, errSecretKeyTooShort
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods(acceptedMethods),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if len(cfg.Audience) > 0 {
		opts = append(opts, jwt.WithAudience(cfg.Audience[0]))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}

	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		parser:    jwt.NewParser(opts...),
	}, nil
}
