package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricStructureHasUniqueNames(t *testing.T) {
	assert.NoError(t, ValidateStructure(MetricStructure))
}

func TestValidateStructureRejectsCollision(t *testing.T) {
	bad := map[string][]string{
		"A": {"Kekuatan"},
		"B": {"Kekuatan"},
	}
	assert.Error(t, ValidateStructure(bad))
}

func TestValidateSnapshot(t *testing.T) {
	ok := Snapshot{
		CategoryPhysical: {"Kekuatan": 7},
		CategorySleep:    {MetricSleepHours: 11},
	}
	assert.NoError(t, ValidateSnapshot(ok))

	assert.Error(t, ValidateSnapshot(Snapshot{}), "empty snapshot")
	assert.Error(t, ValidateSnapshot(Snapshot{"Unknown": {"X": 1}}), "unknown category")
	assert.Error(t, ValidateSnapshot(Snapshot{CategoryPhysical: {"X": 1}}), "unknown metric")
	assert.Error(t, ValidateSnapshot(Snapshot{CategoryPhysical: {"Kekuatan": 11}}), "over scale")
	assert.Error(t, ValidateSnapshot(Snapshot{CategorySleep: {MetricSleepHours: 13}}), "sleep hours over 12")
	assert.Error(t, ValidateSnapshot(Snapshot{CategoryPhysical: {"Kekuatan": -1}}), "negative")
}
