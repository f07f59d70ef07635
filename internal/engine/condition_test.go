package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression(t *testing.T) {
	cases := []struct {
		expr      string
		op        Comparator
		threshold float64
	}{
		{">=7", CompareGTE, 7},
		{">3", CompareGT, 3},
		{"<=4", CompareLTE, 4},
		{"<5", CompareLT, 5},
		{"==8", CompareEQ, 8},
		{"=8", CompareEQ, 8},
		{"!=2", CompareNEQ, 2},
		{"5", CompareEQ, 5},
		{" >= 7 ", CompareGTE, 7},
		{"<4.5", CompareLT, 4.5},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			op, threshold, err := ParseExpression(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.op, op)
			assert.Equal(t, tc.threshold, threshold)
		})
	}
}

func TestParseExpressionRejectsGarbage(t *testing.T) {
	for _, expr := range []string{"", ">=", "abc", ">=x", "<"} {
		_, _, err := ParseExpression(expr)
		assert.Error(t, err, "expression %q", expr)
	}
}

func TestParseCondition(t *testing.T) {
	clauses, err := ParseCondition(`{"Fleksibilitas": "<4", "Kekuatan": "<5"}`)
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	// metric-name order
	assert.Equal(t, "Fleksibilitas", clauses[0].Metric)
	assert.Equal(t, CompareLT, clauses[0].Op)
	assert.Equal(t, 4.0, clauses[0].Threshold)
	assert.Equal(t, "Kekuatan", clauses[1].Metric)
}

func TestParseConditionMalformed(t *testing.T) {
	_, err := ParseCondition(`not json`)
	assert.Error(t, err)

	_, err = ParseCondition(`{"Cedera": ">=banana"}`)
	assert.Error(t, err)

	_, err = ParseCondition(`{"Cedera": 7}`)
	assert.Error(t, err, "expression must be a string")
}

func TestEvaluateCondition(t *testing.T) {
	metrics := map[string]int{"Cedera": 8, "Fleksibilitas": 3, "Kekuatan": 4}

	match := func(raw string) bool {
		clauses, err := ParseCondition(raw)
		require.NoError(t, err)
		return EvaluateCondition(clauses, metrics)
	}

	assert.True(t, match(`{"Cedera": ">=7"}`))
	assert.False(t, match(`{"Cedera": "<7"}`))
	assert.True(t, match(`{"Fleksibilitas": "<4", "Kekuatan": "<5"}`))
	assert.False(t, match(`{"Fleksibilitas": "<4", "Kekuatan": "<4"}`), "one failing clause fails the conjunction")
	assert.True(t, match(`{"Cedera": "8"}`), "bare number is equality")
	assert.True(t, match(`{"Cedera": "!=7"}`))
}

func TestEvaluateConditionMissingMetric(t *testing.T) {
	clauses, err := ParseCondition(`{"Stress": ">=8"}`)
	require.NoError(t, err)
	assert.False(t, EvaluateCondition(clauses, map[string]int{"Cedera": 9}))
	assert.False(t, EvaluateCondition(clauses, map[string]int{}))
	assert.False(t, EvaluateCondition(clauses, nil))
}

func TestEvaluateRulesSortedByPriority(t *testing.T) {
	rules := []Rule{
		{ID: 1, Priority: 3, TriggerCondition: `{"Cedera": ">=1"}`, Recommendation: "third"},
		{ID: 2, Priority: 1, TriggerCondition: `{"Cedera": ">=1"}`, Recommendation: "first"},
		{ID: 3, Priority: 2, TriggerCondition: `{"Cedera": ">=1"}`, Recommendation: "second"},
	}
	matches := EvaluateRules(rules, map[string]int{"Cedera": 5}, nil)
	require.Len(t, matches, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{matches[0].Priority, matches[1].Priority, matches[2].Priority})
	assert.Equal(t, "first", matches[0].Recommendation)
}

func TestEvaluateRulesSkipsMalformed(t *testing.T) {
	rules := []Rule{
		{ID: 1, Priority: 1, TriggerCondition: `{{{broken`, Recommendation: "never"},
		{ID: 2, Priority: 2, TriggerCondition: `{"Pemulihan": "<5"}`, Recommendation: "terapi ringan"},
	}

	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	matches := EvaluateRules(rules, map[string]int{"Pemulihan": 3}, warn)
	require.Len(t, matches, 1)
	assert.Equal(t, "terapi ringan", matches[0].Recommendation)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "rule 1")
}

func TestEvaluateRulesStableOnEqualPriority(t *testing.T) {
	rules := []Rule{
		{ID: 10, Priority: 1, TriggerCondition: `{"Stress": ">=8"}`, Recommendation: "a"},
		{ID: 11, Priority: 1, TriggerCondition: `{"Stress": ">=8"}`, Recommendation: "b"},
	}
	matches := EvaluateRules(rules, map[string]int{"Stress": 9}, nil)
	require.Len(t, matches, 2)
	assert.Equal(t, uint(10), matches[0].RuleID)
	assert.Equal(t, uint(11), matches[1].RuleID)
}
