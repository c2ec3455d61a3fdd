package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-reply-srv/internal/model"
	"smart-reply-srv/internal/smartreply"
)

// GetSmartReplies - validate → build prompt → LLM → normalize
func (uc *implUseCase) GetSmartReplies(ctx context.Context, sc model.Scope, input smartreply.GetSmartRepliesInput) (smartreply.SmartRepliesOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return smartreply.SmartRepliesOutput{}, smartreply.ErrMessageRequired
	}

	prompt := buildPrompt(input.Message, input.History)

	raw, err := uc.gemini.Generate(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "smartreply.usecase.GetSmartReplies: user=%s: Generate failed: %v", sc.UserID, err)
		return smartreply.SmartRepliesOutput{}, fmt.Errorf("%w: %v", smartreply.ErrGenerateFailed, err)
	}

	suggestions := normalizeSuggestions(raw)
	if len(suggestions) < smartreply.SuggestionCount {
		uc.l.Warnf(ctx, "smartreply.usecase.GetSmartReplies: backfill stopped at %d suggestions, raw=%q", len(suggestions), raw)
	}

	return smartreply.SmartRepliesOutput{Suggestions: suggestions}, nil
}
