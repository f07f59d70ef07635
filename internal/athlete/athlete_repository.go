package athlete

import (
	"errors"

	"gorm.io/gorm"
)

// LatestAssessmentInfo is a summary of the athlete's most recent assessment,
// embedded in the athlete detail response.
type LatestAssessmentInfo struct {
	AssessmentID uint     `json:"assessment_id"`
	Date         string   `json:"date"`
	WeightKg     *float64 `json:"weight_kg"`
	Notes        string   `json:"notes"`
}

// AthleteRepository defines the interface for athlete data operations
type AthleteRepository interface {
	CreateAthlete(a *Athlete) error
	GetAthletesByTeam(teamID uint) ([]Athlete, error)
	GetAthleteByID(id, teamID uint) (*Athlete, error)
	UpdateAthlete(a *Athlete) error
	DeleteAthleteCascade(id uint) error
	GetLatestAssessmentInfo(athleteID uint) (*LatestAssessmentInfo, error)
}

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new instance of AthleteRepository
func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) CreateAthlete(a *Athlete) error {
	return r.db.Create(a).Error
}

func (r *athleteRepository) GetAthletesByTeam(teamID uint) ([]Athlete, error) {
	var athletes []Athlete
	if err := r.db.Where("team_id = ?", teamID).Order("name asc").Find(&athletes).Error; err != nil {
		return nil, err
	}
	return athletes, nil
}

// GetAthleteByID is team scoped. An athlete outside the caller's team reads
// the same as a missing one.
func (r *athleteRepository) GetAthleteByID(id, teamID uint) (*Athlete, error) {
	var a Athlete
	if err := r.db.Where("id = ? AND team_id = ?", id, teamID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) UpdateAthlete(a *Athlete) error {
	return r.db.Save(a).Error
}

// DeleteAthleteCascade removes the athlete together with its assessments,
// metric rows and training programs in a single transaction.
func (r *athleteRepository) DeleteAthleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM assessment_metrics WHERE assessment_id IN (SELECT id FROM assessments WHERE athlete_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM assessments WHERE athlete_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM training_programs WHERE athlete_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Athlete{}, id).Error
	})
}

func (r *athleteRepository) GetLatestAssessmentInfo(athleteID uint) (*LatestAssessmentInfo, error) {
	var info LatestAssessmentInfo
	err := r.db.Table("assessments").
		Select("id AS assessment_id, date, weight_kg, notes").
		Where("athlete_id = ? AND deleted_at IS NULL", athleteID).
		Order("date DESC").
		Limit(1).
		Scan(&info).Error
	if err != nil {
		return nil, err
	}
	if info.AssessmentID == 0 {
		return nil, nil
	}
	return &info, nil
}
