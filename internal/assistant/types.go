package assistant

type ChatInput struct {
	Prompt string
}

type ChatOutput struct {
	Prompt   string
	Response string
}
