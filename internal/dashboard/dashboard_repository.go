package dashboard

import (
	"gorm.io/gorm"
)

// PerformanceRow is one metric value at one assessment date.
type PerformanceRow struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Name     string `json:"metric"`
	Value    int    `json:"value"`
}

// MetricValue is one named value from a single assessment.
type MetricValue struct {
	Name  string `json:"metric"`
	Value int    `json:"value"`
}

// DashboardRepository defines the read queries behind the dashboard views
type DashboardRepository interface {
	GetPerformanceRows(athleteID uint, category, metric string) ([]PerformanceRow, error)
	LatestCategoryMetrics(athleteID uint, category string) (string, []MetricValue, error)
	TeamLatestPhysicalValues(teamID uint) ([]int, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetPerformanceRows(athleteID uint, category, metric string) ([]PerformanceRow, error) {
	query := r.db.Table("assessments").
		Select("assessments.date, assessment_metrics.category, assessment_metrics.name, assessment_metrics.value").
		Joins("JOIN assessment_metrics ON assessments.id = assessment_metrics.assessment_id").
		Where("assessments.athlete_id = ? AND assessments.deleted_at IS NULL", athleteID)

	if category != "" {
		query = query.Where("assessment_metrics.category = ?", category)
	}
	if metric != "" {
		query = query.Where("assessment_metrics.name = ?", metric)
	}

	var rows []PerformanceRow
	if err := query.Order("assessments.date ASC, assessment_metrics.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LatestCategoryMetrics returns the metric values of one category from the
// athlete's most recent assessment. An empty date means no assessment exists.
func (r *dashboardRepository) LatestCategoryMetrics(athleteID uint, category string) (string, []MetricValue, error) {
	var latest struct {
		ID   uint
		Date string
	}
	err := r.db.Table("assessments").
		Select("id, date").
		Where("athlete_id = ? AND deleted_at IS NULL", athleteID).
		Order("date DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return "", nil, err
	}
	if latest.ID == 0 {
		return "", nil, nil
	}

	var values []MetricValue
	err = r.db.Table("assessment_metrics").
		Select("name, value").
		Where("assessment_id = ? AND category = ?", latest.ID, category).
		Order("id ASC").
		Scan(&values).Error
	if err != nil {
		return "", nil, err
	}
	return latest.Date, values, nil
}

// TeamLatestPhysicalValues collects every physical metric value from each
// athlete's most recent assessment across the team.
func (r *dashboardRepository) TeamLatestPhysicalValues(teamID uint) ([]int, error) {
	var values []int
	err := r.db.Raw(`
		SELECT am.value
		FROM assessments a1
		JOIN assessment_metrics am ON a1.id = am.assessment_id
		JOIN athletes ath ON a1.athlete_id = ath.id
		WHERE ath.team_id = ?
		  AND a1.deleted_at IS NULL
		  AND am.category = 'Pemeriksaan Fisik'
		  AND a1.date = (
			SELECT MAX(a2.date)
			FROM assessments a2
			WHERE a2.athlete_id = a1.athlete_id AND a2.deleted_at IS NULL
		  )`, teamID).Scan(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
