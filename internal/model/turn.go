package model

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one caller-supplied conversation turn. It is never persisted.
type ChatTurn struct {
	Role string
	Text string
}
