package usecase

import (
	"context"
	"fmt"

	"smart-reply-srv/internal/assistant"
	"smart-reply-srv/internal/model"
)

// Chat forwards the prompt as is and returns the raw model text.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if input.Prompt == "" {
		return assistant.ChatOutput{}, assistant.ErrPromptRequired
	}

	text, err := uc.gemini.Generate(ctx, input.Prompt)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: user=%s: Generate failed: %v", sc.UserID, err)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrGenerateFailed, err)
	}

	return assistant.ChatOutput{
		Prompt:   input.Prompt,
		Response: text,
	}, nil
}
