package recommendation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yanardrognuh/athlete-monitor/internal/assessment"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&athlete.Athlete{},
		&assessment.Assessment{}, &assessment.AssessmentMetric{},
		&exercise.Exercise{},
		&rules.RecommendationRule{}, &rules.CriteriaWeight{},
	))
	return db
}

func newController(db *gorm.DB) *RecommendationController {
	return NewRecommendationController(
		athlete.NewAthleteRepository(db),
		assessment.NewAssessmentRepository(db),
		rules.NewRulesRepository(db),
		exercise.NewExerciseRepository(db),
	)
}

func testContext(t *testing.T, athleteID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.AuthUserIDKey, uint(1))
	c.Set(middleware.AuthRoleKey, "medis")
	c.Set(middleware.AuthTeamIDKey, uint(1))
	c.Params = gin.Params{{Key: "athleteId", Value: athleteID}}
	return c, rec
}

func TestGetRecommendationsCombinesRulesAndSuggestions(t *testing.T) {
	db := setupTestDB(t)

	a := &athlete.Athlete{TeamID: 1, Name: "Yoga Pratama", Position: athlete.PositionDefender, Status: string(engine.StatusFit)}
	require.NoError(t, db.Create(a).Error)

	require.NoError(t, db.Create(&rules.RecommendationRule{
		Priority:           1,
		TriggerCondition:   `{"Cedera": ">=7"}`,
		RecommendationText: "Rujuk ke fisioterapis",
	}).Error)
	require.NoError(t, db.Create(&rules.CriteriaWeight{
		Position: athlete.PositionDefender, CriteriaName: "Kecepatan", Weight: 0.25,
	}).Error)
	require.NoError(t, db.Create(&exercise.Exercise{
		Name: "Sprint 100m", Type: "Cardio", FocusArea: "Kecepatan",
	}).Error)

	repo := assessment.NewAssessmentRepository(db)
	_, err := repo.CreateAssessment(
		&assessment.Assessment{AthleteID: a.ID, UserID: 1, Date: "2025-10-10"},
		engine.Snapshot{engine.CategoryRehab: {engine.MetricInjury: 8}},
	)
	require.NoError(t, err)

	c, rec := testContext(t, "1")
	newController(db).GetRecommendations(c)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data RecommendationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Data.RuleBased, 1)
	assert.Equal(t, "Rujuk ke fisioterapis", body.Data.RuleBased[0].Recommendation)
	assert.Equal(t, "2025-10-10", body.Data.AssessmentDate)

	require.Len(t, body.Data.TrainingSuggestions, 1)
	assert.Equal(t, "Sprint 100m", body.Data.TrainingSuggestions[0].Name)
	assert.InDelta(t, 2.5, body.Data.TrainingSuggestions[0].Score, 1e-9)
}

func TestGetRecommendationsNoAssessmentGivesEmptyRuleMatches(t *testing.T) {
	db := setupTestDB(t)

	a := &athlete.Athlete{TeamID: 1, Name: "Eko Saputra", Position: athlete.PositionGoalkeeper, Status: string(engine.StatusFit)}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(&rules.CriteriaWeight{
		Position: athlete.PositionGoalkeeper, CriteriaName: "Keseimbangan", Weight: 0.1,
	}).Error)

	c, rec := testContext(t, "1")
	newController(db).GetRecommendations(c)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data RecommendationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data.RuleBased)
}

func TestGetTrainingSuggestionsNoWeightsIsNotFound(t *testing.T) {
	db := setupTestDB(t)

	a := &athlete.Athlete{TeamID: 1, Name: "Rafi Ahmad", Position: athlete.PositionStriker, Status: string(engine.StatusFit)}
	require.NoError(t, db.Create(a).Error)

	c, rec := testContext(t, "1")
	newController(db).GetTrainingSuggestions(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecommendationsCrossTeamAthleteIsNotFound(t *testing.T) {
	db := setupTestDB(t)

	a := &athlete.Athlete{TeamID: 2, Name: "Lawan Klub", Position: athlete.PositionStriker, Status: string(engine.StatusFit)}
	require.NoError(t, db.Create(a).Error)

	c, rec := testContext(t, "1")
	newController(db).GetRecommendations(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
