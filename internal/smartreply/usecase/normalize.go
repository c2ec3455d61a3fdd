package usecase

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"smart-reply-srv/internal/smartreply"
)

// listMarker matches leading bullets and numbering such as "- ", "* ", "1. ", "2.".
// Non-breaking, ideographic and zero-width no-break spaces count as indentation.
var listMarker = regexp.MustCompile(`^[\s\p{Zs}\x{FEFF}]*[-*0-9.]+[\s\p{Zs}\x{FEFF}]*`)

// normalizeSuggestions turns raw model text into at most SuggestionCount short, distinct replies.
// Order matters: dedup runs before truncation, and backfill stops at the first fallback
// already present, so the result can hold fewer than SuggestionCount entries.
func normalizeSuggestions(raw string) []string {
	candidates := parseCandidates(raw)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, smartreply.SuggestionCount)
	for _, s := range candidates {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, limitWords(s, smartreply.MaxSuggestionWords))
		if len(out) == smartreply.SuggestionCount {
			break
		}
	}

	return backfill(out)
}

// parseCandidates reads raw as a JSON array and keeps its string entries. Valid JSON that is
// not an array yields nothing; anything that is not JSON is read line by line.
func parseCandidates(raw string) []string {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return parseLines(raw)
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func parseLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimFunc(listMarker.ReplaceAllString(line, ""), isBlank)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func limitWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}

func backfill(suggestions []string) []string {
	for len(suggestions) < smartreply.SuggestionCount {
		next := smartreply.FallbackSuggestions[len(suggestions)]
		if containsFold(suggestions, next) {
			break
		}
		suggestions = append(suggestions, next)
	}
	return suggestions
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
