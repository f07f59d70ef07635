package assessment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
)

// ErrDuplicateDate reports that the athlete already has an assessment on the
// requested date.
var ErrDuplicateDate = errors.New("assessment already recorded for this athlete on this date")

// AssessmentRepository defines the interface for assessment data operations
type AssessmentRepository interface {
	// CreateAssessment inserts the assessment and its metric rows, classifies
	// the snapshot and updates the athlete's cached status and last
	// assessment date, all in one transaction.
	CreateAssessment(a *Assessment, snapshot engine.Snapshot) (engine.Status, error)
	GetAssessmentsByAthlete(athleteID uint) ([]Assessment, error)
	GetAssessmentByID(id, teamID uint) (*Assessment, error)
	LatestSnapshot(athleteID uint) (engine.Snapshot, string, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new instance of AssessmentRepository
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) CreateAssessment(a *Assessment, snapshot engine.Snapshot) (engine.Status, error) {
	status := engine.Classify(snapshot)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Assessment{}).
			Where("athlete_id = ? AND date = ?", a.AthleteID, a.Date).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateDate
		}

		if err := tx.Create(a).Error; err != nil {
			return err
		}

		rows := MetricsFromSnapshot(a.ID, snapshot)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			a.Metrics = rows
		}

		return tx.Model(&athlete.Athlete{}).
			Where("id = ?", a.AthleteID).
			Updates(map[string]interface{}{
				"status":               string(status),
				"last_assessment_date": a.Date,
			}).Error
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *assessmentRepository) GetAssessmentsByAthlete(athleteID uint) ([]Assessment, error) {
	var assessments []Assessment
	if err := r.db.Preload("Metrics").
		Where("athlete_id = ?", athleteID).
		Order("date DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

// GetAssessmentByID is team scoped through the owning athlete.
func (r *assessmentRepository) GetAssessmentByID(id, teamID uint) (*Assessment, error) {
	var a Assessment
	err := r.db.Preload("Metrics").
		Joins("JOIN athletes ON athletes.id = assessments.athlete_id").
		Where("assessments.id = ? AND athletes.team_id = ?", id, teamID).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// LatestSnapshot returns the athlete's most recent assessment as a snapshot,
// or a nil snapshot when no assessment exists.
func (r *assessmentRepository) LatestSnapshot(athleteID uint) (engine.Snapshot, string, error) {
	var a Assessment
	err := r.db.Preload("Metrics").
		Where("athlete_id = ?", athleteID).
		Order("date DESC").
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}
	return SnapshotFromMetrics(a.Metrics), a.Date, nil
}
