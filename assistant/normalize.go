package assistant

import "strings"

// Clean strips surrounding whitespace, removes trailing question marks,
// exclamation marks and periods, and collapses internal whitespace runs to
// single spaces.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "?!.")
	return collapseWhitespace(text)
}

// Truncate collapses whitespace and caps text at limit characters, replacing
// the tail with an ellipsis when it had to cut. The output never exceeds
// limit characters.
func Truncate(text string, limit int) string {
	text = collapseWhitespace(text)
	runes := []rune(text)
	if limit <= 1 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// topicGroup maps recognized question phrasings onto a canonical search
// topic that hits far better on the external sources than the raw question.
type topicGroup struct {
	topic    string
	triggers []string
}

// Checked in order; first match wins.
var topicGroups = []topicGroup{
	{topic: "sea otter predators", triggers: []string{"predator", "eats otters", "eat otters", "eats an otter", "hunted by", "enemies", "prey on"}},
	{topic: "sea otter population decline", triggers: []string{"decline", "declining", "endangered", "extinct", "dying", "threat", "population"}},
	{topic: "sea otter diet", triggers: []string{"eat", "diet", "food", "feed"}},
	{topic: "sea otter habitat", triggers: []string{"habitat", "live", "where", "found", "ocean", "river"}},
	{topic: "sea otter lifespan", triggers: []string{"lifespan", "how long", "age", "years"}},
}

// RewriteForTopic maps a recognized otter question onto its canonical search
// topic. It only fires when a domain keyword is present; otherwise, and when
// no group matches, the input passes through unchanged.
func (a *Assistant) RewriteForTopic(text string) string {
	lowered := strings.ToLower(text)
	if !containsAny(lowered, a.cfg.DomainKeywords) {
		return text
	}
	for _, group := range topicGroups {
		if containsAny(lowered, group.triggers) {
			return group.topic
		}
	}
	return text
}

// containsAny reports whether lowered contains any of the needles.
// Needles are lowercased before comparison.
func containsAny(lowered string, needles []string) bool {
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
