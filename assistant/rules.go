package assistant

import "strings"

// RuleGroup pairs a set of substring triggers with a canned answer.
type RuleGroup struct {
	Name     string
	Triggers []string
	Answer   string
}

// RuleTable is a priority-ordered list of trigger groups checked before any
// network call. The first matching group's answer wins, so declaration order
// is part of the contract: a question can trip more than one group and the
// canned answers differ materially.
type RuleTable struct {
	groups []RuleGroup
}

func NewRuleTable(groups []RuleGroup) *RuleTable {
	return &RuleTable{groups: groups}
}

func (t *RuleTable) Len() int {
	return len(t.groups)
}

// Answer returns the canned answer for the first group with a trigger found
// in the lowercased question, or empty string when nothing matches.
func (t *RuleTable) Answer(question string) string {
	q := strings.ToLower(question)
	for _, group := range t.groups {
		for _, trigger := range group.Triggers {
			if strings.Contains(q, strings.ToLower(trigger)) {
				return group.Answer
			}
		}
	}
	return ""
}

// DefaultRuleTable returns the built-in otter rule set. Help/rescue is
// checked before predators, predators before decline drivers.
func DefaultRuleTable() *RuleTable {
	return NewRuleTable([]RuleGroup{
		{
			Name:     "help",
			Triggers: []string{"help", "rescue", "save", "protect", "volunteer", "donate"},
			Answer:   "The best ways to help otters: support accredited rescue centers, keep waterways clean, and report stranded otters to your local wildlife rescue rather than approaching them yourself.",
		},
		{
			Name:     "predators",
			Triggers: []string{"predator", "enemies", "eats otters", "eat otters", "hunted by"},
			Answer:   "Sea otters are hunted by orcas and great white sharks in the water, and bald eagles can take pups. River otters also face coyotes, wolves and birds of prey on land.",
		},
		{
			Name:     "decline",
			Triggers: []string{"decline", "endangered", "threat", "dying out", "population"},
			Answer:   "Otter populations crashed historically from the fur trade. Today the main pressures are oil spills, entanglement in fishing gear, pollution and habitat loss.",
		},
	})
}
