// exercise/model.go
package exercise

import (
	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/internal/engine"
)

// Exercise is a library entry the recommender scores against position weights.
type Exercise struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Type        string `json:"type" gorm:"not null"`
	FocusArea   string `json:"focus_area" gorm:"not null"`
	Description string `json:"description"`
}

// TrainingProgram is a prescribed exercise for an athlete with FITT dosage
// (frequency, intensity, time, type) plus volume bookkeeping.
type TrainingProgram struct {
	gorm.Model
	AthleteID   uint   `json:"athlete_id" gorm:"not null;index"`
	ExerciseID  uint   `json:"exercise_id" gorm:"not null;index"`
	Frequency   string `json:"frequency"`
	Intensity   string `json:"intensity"`
	Time        string `json:"time"`
	TypeFitt    string `json:"type_fitt"`
	Volume      string `json:"volume"`
	Progression string `json:"progression"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
}

// ToEngineExercises converts library rows into the form the recommender scores.
func ToEngineExercises(list []Exercise) []engine.Exercise {
	out := make([]engine.Exercise, 0, len(list))
	for _, e := range list {
		out = append(out, engine.Exercise{
			ID:          e.ID,
			Name:        e.Name,
			Type:        e.Type,
			FocusArea:   e.FocusArea,
			Description: e.Description,
		})
	}
	return out
}
