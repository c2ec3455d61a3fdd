package assistant

import (
	"context"

	"smart-reply-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
}
