package assistant

import (
	"math/rand/v2"
	"strings"
)

// InDomain reports whether the question mentions at least one configured
// domain keyword. Out-of-domain questions are refused before any network
// call is made.
func (a *Assistant) InDomain(question string) bool {
	return containsAny(strings.ToLower(question), a.cfg.DomainKeywords)
}

// SeemsRelevant is a conservative off-topic filter: when the question names
// the primary domain keyword but the candidate answer never mentions it, the
// answer is rejected as a likely generic-search miss. It only ever rejects,
// never accepts on positive evidence.
func (a *Assistant) SeemsRelevant(answer, question string) bool {
	keyword := strings.ToLower(a.cfg.PrimaryKeyword)
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(question), keyword) &&
		!strings.Contains(strings.ToLower(answer), keyword) {
		return false
	}
	return true
}

// refusal picks one message from the configured pool. The random choice is
// cosmetic; callers only rely on membership in the pool.
func (a *Assistant) refusal() string {
	return a.cfg.RefusalMessages[rand.IntN(len(a.cfg.RefusalMessages))]
}
