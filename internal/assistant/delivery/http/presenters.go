package http

import "smart-reply-srv/internal/assistant"

type chatReq struct {
	Prompt string `json:"prompt"`
}

func (r chatReq) validate() error {
	if r.Prompt == "" {
		return assistant.ErrPromptRequired
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{Prompt: r.Prompt}
}

type chatResp struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

func (h *handler) newChatResp(o assistant.ChatOutput) chatResp {
	return chatResp{
		Prompt:   o.Prompt,
		Response: o.Response,
	}
}
