package engine

import (
	"sort"
	"strings"
)

// Scoring constants. The scale factor only keeps scores human-legible;
// relative ranking is what matters. The rehab penalty pushes non-rehab work
// below rehab work for injured athletes.
const (
	weightScaleFactor = 10.0
	rehabPenalty      = 5.0
	maxSuggestions    = 5
)

// CriteriaWeight is one position-specific weighting of a physical criterion,
// conventionally in [0,1].
type CriteriaWeight struct {
	Name   string
	Weight float64
}

// Exercise is a catalog entry as the recommender sees it.
type Exercise struct {
	ID          uint
	Name        string
	Type        string
	FocusArea   string
	Description string
}

// RankedExercise is a catalog entry with its computed score.
type RankedExercise struct {
	ExerciseID  uint    `json:"exercise_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	FocusArea   string  `json:"focus_area"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// RecommendTraining scores the exercise catalog against the position's
// criteria weights and the athlete's status, returning the top ranked
// exercises in descending score order.
//
// Matching policy: a weight applies when its criteria name is contained,
// case-insensitively, in the exercise focus area ("Kekuatan" matches
// "Kekuatan Kaki"). Athletes in Rehabilitasi get a flat penalty on any
// exercise whose type does not mention "rehab". Scores are not clamped; a
// penalized exercise can rank with a negative score. Deterministic for
// unchanged inputs: ties keep catalog order.
func RecommendTraining(weights []CriteriaWeight, catalog []Exercise, status Status) []RankedExercise {
	ranked := make([]RankedExercise, 0, len(catalog))
	for _, ex := range catalog {
		score := 0.0
		focus := strings.ToLower(ex.FocusArea)
		for _, w := range weights {
			if strings.Contains(focus, strings.ToLower(w.Name)) {
				score += w.Weight * weightScaleFactor
			}
		}
		if status == StatusRehabilitasi && !strings.Contains(strings.ToLower(ex.Type), "rehab") {
			score -= rehabPenalty
		}
		ranked = append(ranked, RankedExercise{
			ExerciseID:  ex.ID,
			Name:        ex.Name,
			Type:        ex.Type,
			FocusArea:   ex.FocusArea,
			Description: ex.Description,
			Score:       score,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked
}
