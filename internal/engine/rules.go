package engine

import (
	"log"
	"sort"
)

// Rule is a recommendation rule as stored: a priority (lower wins), the raw
// trigger-condition text and the advice shown when it matches. The condition
// stays opaque until evaluation.
type Rule struct {
	ID               uint
	Priority         int
	TriggerCondition string
	Recommendation   string
}

// Match is a rule that fired against an athlete's latest metrics.
type Match struct {
	RuleID         uint   `json:"rule_id"`
	Priority       int    `json:"priority"`
	Recommendation string `json:"recommendation"`
}

// WarnFunc receives malformed-rule warnings. Evaluation never fails because a
// single stored rule is broken; the rule is skipped and reported here.
type WarnFunc func(format string, args ...interface{})

// EvaluateRules tests every rule against the flattened metric map and returns
// the matches sorted by priority ascending. Ties keep the incoming rule order.
// A rule whose condition fails to parse is skipped with a warning.
func EvaluateRules(rules []Rule, metrics map[string]int, warn WarnFunc) []Match {
	if warn == nil {
		warn = log.Printf
	}
	matches := make([]Match, 0)
	for _, rule := range rules {
		clauses, err := ParseCondition(rule.TriggerCondition)
		if err != nil {
			warn("skipping rule %d: %v", rule.ID, err)
			continue
		}
		if EvaluateCondition(clauses, metrics) {
			matches = append(matches, Match{
				RuleID:         rule.ID,
				Priority:       rule.Priority,
				Recommendation: rule.Recommendation,
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Priority < matches[j].Priority })
	return matches
}
