// Package seed bootstraps an empty database with a default team, staff
// accounts, a sample roster, the exercise library, per-position criteria
// weights and the default recommendation rules.
package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
	"github.com/yanardrognuh/athlete-monitor/internal/team"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"github.com/yanardrognuh/athlete-monitor/utils"
)

const defaultPassword = "password123"

// Run inserts the bootstrap data. It is a no-op when teams already exist.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&team.Team{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		defaultTeam := &team.Team{Name: "Tim Utama"}
		if err := tx.Create(defaultTeam).Error; err != nil {
			return err
		}

		hashed, err := utils.HashPassword(defaultPassword)
		if err != nil {
			return err
		}

		users := []user.User{
			{Name: "Dr. Budi", Email: "medis@test.com", Password: hashed, Role: user.RoleMedis, TeamID: defaultTeam.ID},
			{Name: "Coach Andi", Email: "pelatih@test.com", Password: hashed, Role: user.RolePelatih, TeamID: defaultTeam.ID},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		athletes := []athlete.Athlete{
			{TeamID: defaultTeam.ID, Name: "Rafi Ahmad", Position: athlete.PositionStriker, Status: "Prima", LastAssessmentDate: "2025-10-10"},
			{TeamID: defaultTeam.ID, Name: "Dimas Setiawan", Position: athlete.PositionMidfielder, Status: "Fit", LastAssessmentDate: "2025-10-09"},
			{TeamID: defaultTeam.ID, Name: "Yoga Pratama", Position: athlete.PositionDefender, Status: "Pemulihan", LastAssessmentDate: "2025-10-08"},
			{TeamID: defaultTeam.ID, Name: "Eko Saputra", Position: athlete.PositionGoalkeeper, Status: "Fit", LastAssessmentDate: "2025-10-10"},
		}
		if err := tx.Create(&athletes).Error; err != nil {
			return err
		}

		exercises := []exercise.Exercise{
			{Name: "Sprint 100m", Type: "Cardio", FocusArea: "Kecepatan", Description: "Latihan sprint jarak pendek"},
			{Name: "Squat", Type: "Strength", FocusArea: "Kekuatan Kaki", Description: "Latihan kekuatan otot kaki"},
			{Name: "Plank", Type: "Core", FocusArea: "Keseimbangan", Description: "Latihan stabilitas core"},
			{Name: "Yoga Stretch", Type: "Flexibility", FocusArea: "Fleksibilitas", Description: "Latihan peregangan"},
		}
		if err := tx.Create(&exercises).Error; err != nil {
			return err
		}

		positions := []string{
			athlete.PositionStriker,
			athlete.PositionMidfielder,
			athlete.PositionDefender,
			athlete.PositionGoalkeeper,
		}
		criteria := []struct {
			name   string
			weight float64
		}{
			{"Kecepatan", 0.25},
			{"Kekuatan", 0.2},
			{"Daya Tahan", 0.2},
			{"Fleksibilitas", 0.15},
			{"Keseimbangan", 0.1},
			{"Kelincahan", 0.1},
		}
		var weights []rules.CriteriaWeight
		for _, position := range positions {
			for _, c := range criteria {
				weights = append(weights, rules.CriteriaWeight{
					Position:     position,
					CriteriaName: c.name,
					Weight:       c.weight,
				})
			}
		}
		if err := tx.Create(&weights).Error; err != nil {
			return err
		}

		defaultRules := []rules.RecommendationRule{
			{
				Priority:           1,
				TriggerCondition:   `{"Cedera": ">=7"}`,
				RecommendationText: "Atlet mengalami cedera berat. Segera rujuk ke fisioterapis dan hentikan latihan intensif.",
			},
			{
				Priority:           2,
				TriggerCondition:   `{"Pemulihan": "<5"}`,
				RecommendationText: "Proses pemulihan masih rendah. Fokus pada terapi ringan dan pemantauan harian.",
			},
			{
				Priority:           3,
				TriggerCondition:   `{"Fleksibilitas": "<4", "Kekuatan": "<5"}`,
				RecommendationText: "Kekuatan dan fleksibilitas di bawah standar. Tambahkan latihan penguatan dan peregangan 3x/minggu.",
			},
			{
				Priority:           4,
				TriggerCondition:   `{"Stress": ">=8"}`,
				RecommendationText: "Tingkat stres sangat tinggi. Lakukan sesi konseling psikologis dan kurangi beban latihan.",
			},
			{
				Priority:           5,
				TriggerCondition:   `{"Rata-rata Jam Tidur": "<6"}`,
				RecommendationText: "Kurang tidur kronis. Edukasi atlet tentang pentingnya istirahat dan pantau pola tidur.",
			},
		}
		if err := tx.Create(&defaultRules).Error; err != nil {
			return err
		}

		log.Println("seed: sample data inserted (medis@test.com / pelatih@test.com)")
		return nil
	})
}
