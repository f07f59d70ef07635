package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Exercise{
	{ID: 1, Name: "Sprint 100m", Type: "Cardio", FocusArea: "Kecepatan", Description: "Latihan sprint jarak pendek"},
	{ID: 2, Name: "Squat", Type: "Strength", FocusArea: "Kekuatan Kaki", Description: "Latihan kekuatan otot kaki"},
	{ID: 3, Name: "Plank", Type: "Core", FocusArea: "Keseimbangan", Description: "Latihan stabilitas core"},
	{ID: 4, Name: "Light Cycling", Type: "Rehab Cardio", FocusArea: "Pemulihan", Description: "Sepeda statis intensitas rendah"},
}

func TestRecommendTrainingBaseScore(t *testing.T) {
	weights := []CriteriaWeight{{Name: "Kecepatan", Weight: 0.25}}
	ranked := RecommendTraining(weights, catalog, StatusFit)

	require.NotEmpty(t, ranked)
	assert.Equal(t, "Sprint 100m", ranked[0].Name)
	assert.Equal(t, 2.5, ranked[0].Score, "0.25 weight * 10 scale, no penalty for Fit")
}

func TestRecommendTrainingSubstringMatch(t *testing.T) {
	// "Kekuatan" must match focus area "Kekuatan Kaki"
	weights := []CriteriaWeight{{Name: "Kekuatan", Weight: 0.2}}
	ranked := RecommendTraining(weights, catalog, StatusFit)

	assert.Equal(t, "Squat", ranked[0].Name)
	assert.Equal(t, 2.0, ranked[0].Score)
}

func TestRecommendTrainingRehabPenalty(t *testing.T) {
	weights := []CriteriaWeight{
		{Name: "Kecepatan", Weight: 0.25},
		{Name: "Pemulihan", Weight: 0.1},
	}
	ranked := RecommendTraining(weights, catalog, StatusRehabilitasi)

	require.Len(t, ranked, 4)
	// the rehab exercise dodges the penalty and wins
	assert.Equal(t, "Light Cycling", ranked[0].Name)
	assert.Equal(t, 1.0, ranked[0].Score)
	// Sprint: 2.5 base - 5 penalty, unclamped
	assert.Equal(t, "Sprint 100m", ranked[1].Name)
	assert.Equal(t, -2.5, ranked[1].Score)
}

func TestRecommendTrainingNoClamping(t *testing.T) {
	ranked := RecommendTraining(nil, catalog[:1], StatusRehabilitasi)
	require.Len(t, ranked, 1)
	assert.Equal(t, -5.0, ranked[0].Score)
}

func TestRecommendTrainingTopFive(t *testing.T) {
	big := make([]Exercise, 8)
	for i := range big {
		big[i] = Exercise{ID: uint(i + 1), Name: "Drill", Type: "Cardio", FocusArea: "Kecepatan"}
	}
	ranked := RecommendTraining([]CriteriaWeight{{Name: "Kecepatan", Weight: 0.5}}, big, StatusFit)
	assert.Len(t, ranked, 5)
}

func TestRecommendTrainingIdempotent(t *testing.T) {
	weights := []CriteriaWeight{
		{Name: "Kecepatan", Weight: 0.25},
		{Name: "Kekuatan", Weight: 0.2},
		{Name: "Keseimbangan", Weight: 0.1},
	}
	first := RecommendTraining(weights, catalog, StatusFit)
	second := RecommendTraining(weights, catalog, StatusFit)
	assert.Equal(t, first, second)
}

func TestRecommendTrainingTiesKeepCatalogOrder(t *testing.T) {
	ranked := RecommendTraining(nil, catalog, StatusFit)
	require.Len(t, ranked, 4)
	for i, ex := range catalog {
		assert.Equal(t, ex.ID, ranked[i].ExerciseID)
		assert.Zero(t, ranked[i].Score)
	}
}
