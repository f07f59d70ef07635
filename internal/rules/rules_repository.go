package rules

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNoWeightsForPosition reports a configuration gap: the position has no
// criteria weights, so weight based ranking cannot run. There is no default
// fallback.
var ErrNoWeightsForPosition = errors.New("no criteria weights configured for position")

// RulesRepository defines the interface for recommendation rule and criteria
// weight data operations
type RulesRepository interface {
	CreateRule(r *RecommendationRule) error
	GetAllRules() ([]RecommendationRule, error)
	GetRuleByID(id uint) (*RecommendationRule, error)
	UpdateRule(r *RecommendationRule) error
	DeleteRule(id uint) error

	GetAllWeights() ([]CriteriaWeight, error)
	GetWeightByID(id uint) (*CriteriaWeight, error)
	GetWeightsByPosition(position string) ([]CriteriaWeight, error)
	UpdateWeight(w *CriteriaWeight) error
}

type rulesRepository struct {
	db *gorm.DB
}

// NewRulesRepository creates a new instance of RulesRepository
func NewRulesRepository(db *gorm.DB) RulesRepository {
	return &rulesRepository{db: db}
}

func (r *rulesRepository) CreateRule(rule *RecommendationRule) error {
	return r.db.Create(rule).Error
}

// GetAllRules returns rules in priority order. Ties keep insertion order so
// evaluation output is deterministic.
func (r *rulesRepository) GetAllRules() ([]RecommendationRule, error) {
	var rules []RecommendationRule
	if err := r.db.Order("priority asc, id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *rulesRepository) GetRuleByID(id uint) (*RecommendationRule, error) {
	var rule RecommendationRule
	if err := r.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *rulesRepository) UpdateRule(rule *RecommendationRule) error {
	return r.db.Save(rule).Error
}

func (r *rulesRepository) DeleteRule(id uint) error {
	return r.db.Delete(&RecommendationRule{}, id).Error
}

func (r *rulesRepository) GetAllWeights() ([]CriteriaWeight, error) {
	var weights []CriteriaWeight
	if err := r.db.Order("position asc, criteria_name asc").Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (r *rulesRepository) GetWeightByID(id uint) (*CriteriaWeight, error) {
	var w CriteriaWeight
	if err := r.db.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *rulesRepository) GetWeightsByPosition(position string) ([]CriteriaWeight, error) {
	var weights []CriteriaWeight
	if err := r.db.Where("position = ?", position).Order("criteria_name asc").Find(&weights).Error; err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return nil, ErrNoWeightsForPosition
	}
	return weights, nil
}

func (r *rulesRepository) UpdateWeight(w *CriteriaWeight) error {
	return r.db.Save(w).Error
}
