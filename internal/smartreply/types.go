package smartreply

import "smart-reply-srv/internal/model"

const (
	MaxHistoryTurns    = 4
	SuggestionCount    = 3
	MaxSuggestionWords = 7
)

// FallbackSuggestions backfill short model output, picked by the current suggestion count.
var FallbackSuggestions = [SuggestionCount]string{"Sure!", "Can you clarify?", "Let me check."}

type GetSmartRepliesInput struct {
	Message string
	History []model.ChatTurn
}

type SmartRepliesOutput struct {
	Suggestions []string
}
