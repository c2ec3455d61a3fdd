package usecase

import (
	"strings"
	"testing"

	"smart-reply-srv/internal/smartreply"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty input is fully backfilled",
			raw:  "",
			want: []string{"Sure!", "Can you clarify?", "Let me check."},
		},
		{
			name: "valid array passes through",
			raw:  `["Sounds good!","Maybe later?","Why not?"]`,
			want: []string{"Sounds good!", "Maybe later?", "Why not?"},
		},
		{
			name: "case-insensitive dedup then backfill by position",
			raw:  `["Yes","yes","No"]`,
			want: []string{"Yes", "No", "Let me check."},
		},
		{
			name: "numbered prose keeps the first three",
			raw:  "1. Okay\n2. Not now\n3. Maybe\n4. Extra",
			want: []string{"Okay", "Not now", "Maybe"},
		},
		{
			name: "overlong suggestion is cut to seven words",
			raw:  `["This is a very long suggestion that has more than seven words total"]`,
			want: []string{"This is a very long suggestion that", "Can you clarify?", "Let me check."},
		},
		{
			name: "bullets and blank lines",
			raw:  "Here you go:\n\n- Sure thing\n* On it\n   -   Later  \n",
			want: []string{"Here you go:", "Sure thing", "On it"},
		},
		{
			name: "non-string entries are dropped",
			raw:  `[1, null, {"a":"b"}, "  Okay  ", true, ""]`,
			want: []string{"Okay", "Can you clarify?", "Let me check."},
		},
		{
			name: "valid JSON that is not an array yields nothing",
			raw:  `{"suggestions":["a","b","c"]}`,
			want: []string{"Sure!", "Can you clarify?", "Let me check."},
		},
		{
			name: "JSON string scalar is not split into lines",
			raw:  `"Sure, sounds good"`,
			want: []string{"Sure!", "Can you clarify?", "Let me check."},
		},
		{
			name: "more than three unique entries",
			raw:  `["a","b","c","d"]`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "internal whitespace is kept when not truncating",
			raw:  `["two   spaces"]`,
			want: []string{"two   spaces", "Can you clarify?", "Let me check."},
		},
		{
			name: "whitespace collapses when truncating",
			raw:  `["one  two three four five six seven eight"]`,
			want: []string{"one two three four five six seven", "Can you clarify?", "Let me check."},
		},
		{
			name: "existing first fallback does not block later slots",
			raw:  `["Sure!"]`,
			want: []string{"Sure!", "Can you clarify?", "Let me check."},
		},
		{
			name: "carriage returns are trimmed",
			raw:  "- Okay\r\n- Fine\r\n",
			want: []string{"Okay", "Fine", "Let me check."},
		},
		{
			name: "unicode indentation before markers",
			raw:  "\u00a0- Okay\n\u3000* Fine",
			want: []string{"Okay", "Fine", "Let me check."},
		},
		{
			name: "byte order mark before numbering",
			raw:  "\ufeff1. Hi",
			want: []string{"Hi", "Can you clarify?", "Let me check."},
		},
		{
			name: "byte order mark without marker",
			raw:  "\ufeffHello there\ufeff",
			want: []string{"Hello there", "Can you clarify?", "Let me check."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSuggestions(tt.raw))
		})
	}
}

func TestNormalizeSuggestionsBackfillStopsOnPresentFallback(t *testing.T) {
	// The slot-1 fallback is already present, so backfill stops short of three.
	got := normalizeSuggestions(`["Can you clarify?"]`)
	assert.Equal(t, []string{"Can you clarify?"}, got)

	got = normalizeSuggestions(`["Fine","Let me check."]`)
	assert.Equal(t, []string{"Fine", "Let me check."}, got)

	// Presence is checked case-insensitively so the set stays distinct.
	got = normalizeSuggestions(`["can you clarify?"]`)
	assert.Equal(t, []string{"can you clarify?"}, got)
}

func TestNormalizeSuggestionsProperties(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"null",
		"[]",
		`["a","A","a "," a"]`,
		"1.\n2.\n3.",
		"* * *",
		`["` + strings.Repeat("word ", 40) + `"]`,
		"Sure!\nsure!\nSURE!\nok",
		`["x","y","z","w","v"]`,
		"plain prose with no list at all",
		`[42, 3.14, false]`,
		"- one\n- two\n- three\n- four\n- five",
	}
	for _, in := range inputs {
		got := normalizeSuggestions(in)
		assert.LessOrEqual(t, len(got), smartreply.SuggestionCount, "input %q", in)

		seen := map[string]bool{}
		for _, s := range got {
			assert.NotEmpty(t, strings.TrimSpace(s), "input %q", in)
			assert.LessOrEqual(t, len(strings.Fields(s)), smartreply.MaxSuggestionWords, "input %q", in)
			key := strings.ToLower(s)
			assert.False(t, seen[key], "duplicate %q for input %q", s, in)
			seen[key] = true
		}
		// None of these inputs hit the stop-on-present rule.
		assert.Len(t, got, smartreply.SuggestionCount, "input %q", in)
	}
}

func TestLimitWords(t *testing.T) {
	assert.Equal(t, "a b c", limitWords("a b c", 7))
	assert.Equal(t, "1 2 3 4 5 6 7", limitWords("1 2 3 4 5 6 7 8 9", 7))
	assert.Equal(t, "a\tb", limitWords("a\tb", 7))
}
