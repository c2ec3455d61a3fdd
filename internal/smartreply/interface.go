package smartreply

import (
	"context"

	"smart-reply-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetSmartReplies(ctx context.Context, sc model.Scope, input GetSmartRepliesInput) (SmartRepliesOutput, error)
}
