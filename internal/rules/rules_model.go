// rules/model.go
package rules

import (
	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/internal/engine"
)

// RecommendationRule stores a trigger condition as opaque JSON text. The text
// is parsed only at evaluation time; a malformed rule is skipped there with a
// warning rather than rejected here.
type RecommendationRule struct {
	gorm.Model
	Priority           int    `json:"priority" gorm:"not null;index"`
	TriggerCondition   string `json:"trigger_condition" gorm:"type:text;not null"`
	RecommendationText string `json:"recommendation_text" gorm:"type:text;not null"`
}

// CriteriaWeight scores how much a criteria matters for a field position.
type CriteriaWeight struct {
	gorm.Model
	Position     string  `json:"position" gorm:"not null;index"`
	CriteriaName string  `json:"criteria_name" gorm:"not null"`
	Weight       float64 `json:"weight" gorm:"not null"`
}

// ToEngineRules converts stored rules into the engine's evaluation form,
// preserving fetch order.
func ToEngineRules(list []RecommendationRule) []engine.Rule {
	out := make([]engine.Rule, 0, len(list))
	for _, r := range list {
		out = append(out, engine.Rule{
			ID:               r.ID,
			Priority:         r.Priority,
			TriggerCondition: r.TriggerCondition,
			Recommendation:   r.RecommendationText,
		})
	}
	return out
}

// ToEngineWeights converts stored weights into the recommender's form.
func ToEngineWeights(list []CriteriaWeight) []engine.CriteriaWeight {
	out := make([]engine.CriteriaWeight, 0, len(list))
	for _, w := range list {
		out = append(out, engine.CriteriaWeight{
			Name:   w.CriteriaName,
			Weight: w.Weight,
		})
	}
	return out
}
