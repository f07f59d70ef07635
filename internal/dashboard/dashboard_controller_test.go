package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPerformanceSeriesPercentageChange(t *testing.T) {
	rows := []PerformanceRow{
		{Date: "2025-10-01", Category: "Pemeriksaan Fisik", Name: "Kekuatan", Value: 4},
		{Date: "2025-10-08", Category: "Pemeriksaan Fisik", Name: "Kekuatan", Value: 6},
		{Date: "2025-10-15", Category: "Pemeriksaan Fisik", Name: "Kekuatan", Value: 5},
	}

	series := BuildPerformanceSeries(rows)
	require.Len(t, series, 1)
	require.Len(t, series[0].Data, 3)

	assert.Equal(t, 0.0, series[0].Data[0].PercentageChange)
	assert.Equal(t, 50.0, series[0].Data[1].PercentageChange)
	assert.Equal(t, -16.7, series[0].Data[2].PercentageChange)
}

func TestBuildPerformanceSeriesZeroPrevious(t *testing.T) {
	rows := []PerformanceRow{
		{Date: "2025-10-01", Category: "Rehabilitasi", Name: "Cedera", Value: 0},
		{Date: "2025-10-08", Category: "Rehabilitasi", Name: "Cedera", Value: 5},
	}

	series := BuildPerformanceSeries(rows)
	require.Len(t, series, 1)
	assert.Equal(t, 0.0, series[0].Data[1].PercentageChange)
}

func TestBuildPerformanceSeriesPreservesFirstSeenOrder(t *testing.T) {
	rows := []PerformanceRow{
		{Date: "2025-10-01", Category: "Pemeriksaan Fisik", Name: "Kecepatan", Value: 7},
		{Date: "2025-10-01", Category: "Kesehatan Mental", Name: "Fokus", Value: 6},
		{Date: "2025-10-08", Category: "Pemeriksaan Fisik", Name: "Kecepatan", Value: 8},
	}

	series := BuildPerformanceSeries(rows)
	require.Len(t, series, 2)
	assert.Equal(t, "Kecepatan", series[0].Metric)
	assert.Equal(t, "Fokus", series[1].Metric)
	assert.Len(t, series[0].Data, 2)
}

func TestBuildPerformanceSeriesEmpty(t *testing.T) {
	assert.Empty(t, BuildPerformanceSeries(nil))
}
