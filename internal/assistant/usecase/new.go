package usecase

import (
	"smart-reply-srv/internal/assistant"
	"smart-reply-srv/pkg/gemini"
	"smart-reply-srv/pkg/log"
)

type implUseCase struct {
	gemini gemini.IGemini
	l      log.Logger
}

// New - Factory function
func New(gemini gemini.IGemini, l log.Logger) assistant.UseCase {
	return &implUseCase{
		gemini: gemini,
		l:      l,
	}
}
