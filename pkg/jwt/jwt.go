package jwt

import (
	"fmt"

	"smart-reply-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

// Verify checks the signature and registered claims of token and returns its payload.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.parse(token)
	if err != nil {
		return scope.Payload{}, err
	}

	p := scope.Payload{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}
	p.Subject = claims.Subject
	p.Id = claims.ID
	p.Issuer = claims.Issuer
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}

func (m *managerImpl) parse(tokenString string) (*Claims, error) {
	token, err := m.parser.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
