package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRehabDominatesFitness(t *testing.T) {
	s := Snapshot{
		CategoryRehab:    {MetricInjury: 8},
		CategoryPhysical: {"Kekuatan": 10, "Kecepatan": 10, "Daya Tahan": 10},
		CategoryMental:   {"Fokus": 10, "Motivasi": 10},
	}
	assert.Equal(t, StatusRehabilitasi, Classify(s))
}

func TestClassifyRecoveryInProgress(t *testing.T) {
	s := Snapshot{
		CategoryRehab:    {MetricRecoveryProgress: 3},
		CategoryPhysical: {},
	}
	assert.Equal(t, StatusPemulihan, Classify(s))

	// an explicit zero still counts as present
	s = Snapshot{CategoryRehab: {MetricRecoveryProgress: 0}}
	assert.Equal(t, StatusPemulihan, Classify(s))

	// recovered enough: falls through to the averages
	s = Snapshot{
		CategoryRehab:    {MetricRecoveryProgress: 6},
		CategoryPhysical: {"Kekuatan": 9, "Kecepatan": 9},
		CategoryMental:   {"Fokus": 9},
	}
	assert.Equal(t, StatusPrima, Classify(s))
}

func TestClassifyPrimaRequiresBothAxes(t *testing.T) {
	s := Snapshot{
		CategoryPhysical: {"Kekuatan": 8, "Kecepatan": 8},
		// avgMental = 7.9 keeps this at Fit
		CategoryMental: {"Fokus": 8, "Motivasi": 8, "Stress": 8, "Percaya Diri": 8, "Kohesi Tim": 7},
	}
	avg := categoryAverage(s[CategoryMental])
	assert.InDelta(t, 7.8, avg, 0.01)
	assert.Equal(t, StatusFit, Classify(s))

	s[CategoryMental]["Kohesi Tim"] = 8
	assert.Equal(t, StatusPrima, Classify(s))
}

func TestClassifyDefaultsToNeutralAverages(t *testing.T) {
	// nothing recorded: both averages default to 5 → below Fit
	assert.Equal(t, StatusPemulihan, Classify(Snapshot{}))

	// only physicals recorded, mental defaults to 5 → Fit requires >=6 on both
	s := Snapshot{CategoryPhysical: {"Kekuatan": 9}}
	assert.Equal(t, StatusPemulihan, Classify(s))
}

func TestClassifyFitBand(t *testing.T) {
	s := Snapshot{
		CategoryPhysical: {"Kekuatan": 6, "Kecepatan": 7},
		CategoryMental:   {"Fokus": 6},
	}
	assert.Equal(t, StatusFit, Classify(s))

	s[CategoryMental]["Fokus"] = 5
	assert.Equal(t, StatusPemulihan, Classify(s))
}

func TestFlatten(t *testing.T) {
	s := Snapshot{
		CategoryRehab:    {MetricRecoveryProgress: 3},
		CategoryPhysical: {"Kekuatan": 7},
	}
	flat := Flatten(s)
	assert.Equal(t, map[string]int{MetricRecoveryProgress: 3, "Kekuatan": 7}, flat)
}

func TestClassifyThenRuleMatchEndToEnd(t *testing.T) {
	s := Snapshot{
		CategoryRehab:    {MetricRecoveryProgress: 3},
		CategoryPhysical: {},
	}
	assert.Equal(t, StatusPemulihan, Classify(s))

	matches := EvaluateRules(
		[]Rule{{ID: 1, Priority: 2, TriggerCondition: `{"Pemulihan": "<5"}`, Recommendation: "fokus terapi ringan"}},
		Flatten(s), nil)
	assert.Len(t, matches, 1)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"Prima", "Fit", "Pemulihan", "Rehabilitasi"} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("Injured"))
	assert.False(t, ValidStatus("prima"))
	assert.False(t, ValidStatus(""))
}
