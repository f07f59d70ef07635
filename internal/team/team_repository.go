package team

import (
	"errors"

	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	GetAllTeams() ([]Team, error)
	GetTeamMembers(teamID uint) ([]user.User, error)
	CountAthletes(teamID uint) (int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var team Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams() ([]Team, error) {
	var teams []Team
	if err := r.db.Order("name asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) GetTeamMembers(teamID uint) ([]user.User, error) {
	var members []user.User
	if err := r.db.Where("team_id = ?", teamID).Order("name asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) CountAthletes(teamID uint) (int64, error) {
	var count int64
	err := r.db.Table("athletes").Where("team_id = ? AND deleted_at IS NULL", teamID).Count(&count).Error
	return count, err
}
