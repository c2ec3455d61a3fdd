package scope

import (
	"context"
	"testing"

	"smart-reply-srv/internal/model"

	jwtv3 "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestNewScopeFallsBackToSubject(t *testing.T) {
	p := Payload{StandardClaims: jwtv3.StandardClaims{Subject: "u-1", Id: "jti-1"}, Username: "ana@example.com"}
	sc := NewScope(p)
	assert.Equal(t, "u-1", sc.UserID)
	assert.Equal(t, "ana@example.com", sc.Username)
	assert.Equal(t, "jti-1", sc.JTI)

	p.UserID = "u-2"
	assert.Equal(t, "u-2", NewScope(p).UserID)
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, model.Scope{}, GetScopeFromContext(ctx))

	ctx = SetScopeToContext(ctx, NewScope(Payload{UserID: "u-1", Role: "USER"}))
	assert.Equal(t, model.Scope{UserID: "u-1", Role: "USER"}, GetScopeFromContext(ctx))
}
