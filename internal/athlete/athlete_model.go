// athlete/model.go
package athlete

import (
	"gorm.io/gorm"
)

// Field positions an athlete can be registered under.
const (
	PositionStriker    = "Striker"
	PositionMidfielder = "Midfielder"
	PositionDefender   = "Defender"
	PositionGoalkeeper = "Goalkeeper"
)

func ValidPosition(p string) bool {
	switch p {
	case PositionStriker, PositionMidfielder, PositionDefender, PositionGoalkeeper:
		return true
	}
	return false
}

// Athlete is a monitored team member. Status is a cached classification,
// refreshed whenever a new assessment is recorded, and overridable by a coach.
type Athlete struct {
	gorm.Model
	TeamID             uint   `json:"team_id" gorm:"index;not null"`
	Name               string `json:"name" gorm:"not null"`
	Position           string `json:"position" gorm:"not null"`
	Status             string `json:"status" gorm:"default:'Fit'"`
	LastAssessmentDate string `json:"last_assessment_date"`
}
