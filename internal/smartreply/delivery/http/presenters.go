package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"smart-reply-srv/internal/model"
	"smart-reply-srv/internal/smartreply"
)

type smartRepliesReq struct {
	Message string `json:"message"`
	// History stays raw: anything that is not an array of turns is ignored, not rejected.
	History json.RawMessage `json:"history,omitempty" swaggertype:"array,object"`
}

// turnReq keeps both fields raw so one badly typed field does not drop the other.
type turnReq struct {
	Role json.RawMessage `json:"role"`
	Text json.RawMessage `json:"text"`
}

func (r smartRepliesReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return smartreply.ErrMessageRequired
	}
	return nil
}

func (r smartRepliesReq) toInput() smartreply.GetSmartRepliesInput {
	return smartreply.GetSmartRepliesInput{
		Message: r.Message,
		History: parseHistory(r.History),
	}
}

// parseHistory decodes a JSON array of turns. A value that is not an array gives no turns;
// an element that is not a turn object becomes an empty user turn. Numbers and booleans in
// role or text are kept as their literal text; objects and arrays read as empty.
func parseHistory(raw json.RawMessage) []model.ChatTurn {
	if len(raw) == 0 {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	turns := make([]model.ChatTurn, 0, len(items))
	for _, item := range items {
		var t turnReq
		if err := json.Unmarshal(item, &t); err != nil {
			t = turnReq{}
		}
		role := scalarText(t.Role)
		if role == "false" || role == "0" {
			role = ""
		}
		turns = append(turns, model.ChatTurn{Role: role, Text: scalarText(t.Text)})
	}
	return turns
}

func scalarText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch v.(type) {
	case float64, bool:
		return string(bytes.TrimSpace(raw))
	default:
		return ""
	}
}

type smartRepliesResp struct {
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newSmartRepliesResp(o smartreply.SmartRepliesOutput) smartRepliesResp {
	suggestions := o.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return smartRepliesResp{Suggestions: suggestions}
}
