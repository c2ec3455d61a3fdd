package usecase

import (
	"smart-reply-srv/internal/smartreply"
	"smart-reply-srv/pkg/gemini"
	"smart-reply-srv/pkg/log"
)

type implUseCase struct {
	gemini gemini.IGemini
	l      log.Logger
}

// New - Factory function
func New(gemini gemini.IGemini, l log.Logger) smartreply.UseCase {
	return &implUseCase{
		gemini: gemini,
		l:      l,
	}
}
