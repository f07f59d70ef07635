package assessment

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&athlete.Athlete{}, &Assessment{}, &AssessmentMetric{}))
	return db
}

func seedAthlete(t *testing.T, db *gorm.DB) *athlete.Athlete {
	t.Helper()
	a := &athlete.Athlete{TeamID: 1, Name: "Rafi Ahmad", Position: athlete.PositionStriker, Status: string(engine.StatusFit)}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestCreateAssessmentUpdatesAthleteAtomically(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepository(db)
	a := seedAthlete(t, db)

	snapshot := engine.Snapshot{
		engine.CategoryRehab: {engine.MetricInjury: 8},
	}

	record := &Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-10"}
	status, err := repo.CreateAssessment(record, snapshot)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusRehabilitasi, status)
	assert.NotZero(t, record.ID)
	assert.Len(t, record.Metrics, 1)

	var updated athlete.Athlete
	require.NoError(t, db.First(&updated, a.ID).Error)
	assert.Equal(t, string(engine.StatusRehabilitasi), updated.Status)
	assert.Equal(t, "2025-10-10", updated.LastAssessmentDate)
}

func TestCreateAssessmentDuplicateDateLeavesStatusUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepository(db)
	a := seedAthlete(t, db)

	first := engine.Snapshot{
		engine.CategoryPhysical: {"Kekuatan": 9, "Kecepatan": 9},
		engine.CategoryMental:   {"Fokus": 9},
	}
	_, err := repo.CreateAssessment(&Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-10"}, first)
	require.NoError(t, err)

	second := engine.Snapshot{
		engine.CategoryRehab: {engine.MetricInjury: 9},
	}
	_, err = repo.CreateAssessment(&Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-10"}, second)
	assert.ErrorIs(t, err, ErrDuplicateDate)

	var updated athlete.Athlete
	require.NoError(t, db.First(&updated, a.ID).Error)
	assert.Equal(t, string(engine.StatusPrima), updated.Status)

	var count int64
	require.NoError(t, db.Model(&Assessment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLatestSnapshotRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepository(db)
	a := seedAthlete(t, db)

	older := engine.Snapshot{engine.CategoryPhysical: {"Kekuatan": 3}}
	newer := engine.Snapshot{engine.CategoryPhysical: {"Kekuatan": 7}, engine.CategorySleep: {engine.MetricSleepHours: 8}}

	_, err := repo.CreateAssessment(&Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-08"}, older)
	require.NoError(t, err)
	_, err = repo.CreateAssessment(&Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-09"}, newer)
	require.NoError(t, err)

	snapshot, date, err := repo.LatestSnapshot(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-09", date)
	assert.Equal(t, newer, snapshot)
}

func TestLatestSnapshotNoAssessments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepository(db)
	a := seedAthlete(t, db)

	snapshot, date, err := repo.LatestSnapshot(a.ID)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
	assert.Empty(t, date)
}
