package usecase

import (
	"strings"

	"smart-reply-srv/internal/model"
	"smart-reply-srv/internal/smartreply"
)

const instructionRules = `
You generate quick chat replies.

Rules:
- Return ONLY a JSON array of 3 strings. Example: ["Sure!","Maybe later?","Not sure."]
- Each suggestion: <= 7 words, casual, natural, no emojis.
- Vary tone (positive / neutral / clarifying).
- No extra text, no explanations, no numbering.
Context:
`

// buildPrompt - rules, then the last MaxHistoryTurns turns as "role: text" lines, then the message
func buildPrompt(message string, history []model.ChatTurn) string {
	var b strings.Builder
	b.WriteString(instructionRules)

	if historyBlock := buildHistoryBlock(history); historyBlock != "" {
		b.WriteString(historyBlock)
		b.WriteString("\n")
	}

	b.WriteString(`Last message: "`)
	b.WriteString(message)
	b.WriteString("\"\n")
	return b.String()
}

func buildHistoryBlock(history []model.ChatTurn) string {
	if len(history) > smartreply.MaxHistoryTurns {
		history = history[len(history)-smartreply.MaxHistoryTurns:]
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		role := turn.Role
		if role == "" {
			role = model.RoleUser
		}
		lines = append(lines, role+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}
