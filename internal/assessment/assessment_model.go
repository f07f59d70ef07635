// assessment/model.go
package assessment

import (
	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/internal/engine"
)

// Assessment is one dated examination of an athlete. Records are append-only;
// corrections are made by recording a new assessment on a later date.
type Assessment struct {
	gorm.Model
	AthleteID uint               `json:"athlete_id" gorm:"not null;uniqueIndex:idx_athlete_date"`
	UserID    uint               `json:"user_id" gorm:"not null;index"`
	Date      string             `json:"date" gorm:"not null;uniqueIndex:idx_athlete_date"`
	WeightKg  *float64           `json:"weight_kg"`
	Notes     string             `json:"notes"`
	Metrics   []AssessmentMetric `json:"metrics" gorm:"foreignKey:AssessmentID"`
}

// AssessmentMetric is a single scored metric within an assessment.
type AssessmentMetric struct {
	gorm.Model
	AssessmentID uint   `json:"assessment_id" gorm:"not null;index"`
	Category     string `json:"category" gorm:"not null"`
	Name         string `json:"name" gorm:"not null"`
	Value        int    `json:"value" gorm:"not null"`
}

// SnapshotFromMetrics groups metric rows back into the nested snapshot form
// the engine consumes.
func SnapshotFromMetrics(metrics []AssessmentMetric) engine.Snapshot {
	s := engine.Snapshot{}
	for _, m := range metrics {
		if s[m.Category] == nil {
			s[m.Category] = map[string]int{}
		}
		s[m.Category][m.Name] = m.Value
	}
	return s
}

// MetricsFromSnapshot flattens a snapshot into rows for persistence.
func MetricsFromSnapshot(assessmentID uint, s engine.Snapshot) []AssessmentMetric {
	var rows []AssessmentMetric
	for category, metrics := range s {
		for name, value := range metrics {
			rows = append(rows, AssessmentMetric{
				AssessmentID: assessmentID,
				Category:     category,
				Name:         name,
				Value:        value,
			})
		}
	}
	return rows
}
