package assistant

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing_punctuation_and_whitespace", input: "  What is it??  ", want: "What is it"},
		{name: "mixed_trailing_punctuation", input: "Really?!.", want: "Really"},
		{name: "internal_whitespace_collapsed", input: "what  do\totters \n eat", want: "what do otters eat"},
		{name: "empty_input", input: "", want: ""},
		{name: "only_punctuation", input: "???", want: ""},
		{name: "already_clean", input: "where do otters live", want: "where do otters live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short_input_unchanged", input: "short answer", limit: 50, want: "short answer"},
		{name: "exact_limit_unchanged", input: "12345", limit: 5, want: "12345"},
		{name: "over_limit_gets_ellipsis", input: "123456789", limit: 5, want: "1234…"},
		{name: "whitespace_collapsed_first", input: "a   b   c", limit: 50, want: "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"",
		"a",
		strings.Repeat("word ", 100),
		strings.Repeat("x", 500),
	}
	for _, input := range inputs {
		for _, limit := range []int{2, 5, 40, 240} {
			got := Truncate(input, limit)
			if length := len([]rune(got)); length > limit {
				t.Errorf("Truncate(len %d, %d) produced length %d", len(input), limit, length)
			}
		}
	}
}

func TestRewriteForTopic(t *testing.T) {
	a := newTestAssistant(t, testConfig(), &fakeSource{name: "fake"})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "predator_question", input: "what eats otters", want: "sea otter predators"},
		{name: "decline_question", input: "why are otters declining", want: "sea otter population decline"},
		{name: "diet_question", input: "what do otters eat", want: "sea otter diet"},
		{name: "habitat_question", input: "where do otters live", want: "sea otter habitat"},
		{name: "lifespan_question", input: "what is the lifespan of an otter", want: "sea otter lifespan"},
		{name: "no_domain_keyword_unchanged", input: "what eats them", want: "what eats them"},
		{name: "no_group_match_unchanged", input: "tell me about otters", want: "tell me about otters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.RewriteForTopic(tt.input); got != tt.want {
				t.Errorf("RewriteForTopic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
