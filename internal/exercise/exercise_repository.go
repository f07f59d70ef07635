package exercise

import (
	"errors"

	"gorm.io/gorm"
)

// ExerciseRepository defines the interface for exercise library and training
// program data operations
type ExerciseRepository interface {
	CreateExercise(e *Exercise) error
	GetAllExercises() ([]Exercise, error)
	GetExerciseByID(id uint) (*Exercise, error)
	CreateTrainingProgram(p *TrainingProgram) error
	GetProgramsByAthlete(athleteID uint) ([]TrainingProgram, error)
}

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates a new instance of ExerciseRepository
func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) CreateExercise(e *Exercise) error {
	return r.db.Create(e).Error
}

func (r *exerciseRepository) GetAllExercises() ([]Exercise, error) {
	var exercises []Exercise
	if err := r.db.Order("name asc").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepository) GetExerciseByID(id uint) (*Exercise, error) {
	var e Exercise
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *exerciseRepository) CreateTrainingProgram(p *TrainingProgram) error {
	return r.db.Create(p).Error
}

func (r *exerciseRepository) GetProgramsByAthlete(athleteID uint) ([]TrainingProgram, error) {
	var programs []TrainingProgram
	if err := r.db.Where("athlete_id = ?", athleteID).Order("created_at DESC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}
