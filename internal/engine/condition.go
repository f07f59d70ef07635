package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Comparator identifies the comparison operator of a single trigger clause.
type Comparator int

const (
	CompareEQ Comparator = iota
	CompareNEQ
	CompareGT
	CompareGTE
	CompareLT
	CompareLTE
)

func (op Comparator) String() string {
	switch op {
	case CompareEQ:
		return "=="
	case CompareNEQ:
		return "!="
	case CompareGT:
		return ">"
	case CompareGTE:
		return ">="
	case CompareLT:
		return "<"
	case CompareLTE:
		return "<="
	}
	return "?"
}

// Clause is one parsed condition on a single metric. A trigger condition is
// the conjunction of all its clauses.
type Clause struct {
	Metric    string
	Op        Comparator
	Threshold float64
}

// operatorPrefixes is checked in order; multi-character operators must come
// before their single-character prefixes.
var operatorPrefixes = []struct {
	text string
	op   Comparator
}{
	{">=", CompareGTE},
	{"<=", CompareLTE},
	{"==", CompareEQ},
	{"!=", CompareNEQ},
	{">", CompareGT},
	{"<", CompareLT},
	{"=", CompareEQ},
}

// ParseExpression parses a comparison expression such as ">=7", "<5" or "8".
// A bare number means equality.
func ParseExpression(expr string) (Comparator, float64, error) {
	expr = strings.TrimSpace(expr)
	op := CompareEQ
	rest := expr
	for _, p := range operatorPrefixes {
		if strings.HasPrefix(expr, p.text) {
			op = p.op
			rest = expr[len(p.text):]
			break
		}
	}
	threshold, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid threshold in expression %q", expr)
	}
	return op, threshold, nil
}

// ParseCondition parses the stored trigger-condition text, a JSON object
// mapping metric names to comparison expressions, e.g.
// {"Fleksibilitas": "<4", "Kekuatan": "<5"}. Clauses are returned in metric
// name order so evaluation and error reporting are deterministic.
func ParseCondition(raw string) ([]Clause, error) {
	var spec map[string]string
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, fmt.Errorf("trigger condition is not a JSON object of expressions: %w", err)
	}
	clauses := make([]Clause, 0, len(spec))
	for metric, expr := range spec {
		op, threshold, err := ParseExpression(expr)
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", metric, err)
		}
		clauses = append(clauses, Clause{Metric: metric, Op: op, Threshold: threshold})
	}
	sort.Slice(clauses, func(i, j int) bool { return clauses[i].Metric < clauses[j].Metric })
	return clauses, nil
}

func (c Clause) holds(value float64) bool {
	switch c.Op {
	case CompareGTE:
		return value >= c.Threshold
	case CompareGT:
		return value > c.Threshold
	case CompareLTE:
		return value <= c.Threshold
	case CompareLT:
		return value < c.Threshold
	case CompareEQ:
		return value == c.Threshold
	case CompareNEQ:
		return value != c.Threshold
	}
	return false
}

// EvaluateCondition reports whether every clause holds against the flattened
// metric map. A metric missing from the map fails the whole condition; missing
// data is a non-match, never an error.
func EvaluateCondition(clauses []Clause, metrics map[string]int) bool {
	for _, c := range clauses {
		value, ok := metrics[c.Metric]
		if !ok {
			return false
		}
		if !c.holds(float64(value)) {
			return false
		}
	}
	return true
}
