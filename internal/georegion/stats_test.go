package georegion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-hub-go/pkg/model"
)

func TestStatsFor_KnownState(t *testing.T) {
	stats := StatsFor("NY")
	assert.Equal(t, model.CrimeStats{
		"homicide":            5,
		"robbery":             120,
		"aggravated_assault":  180,
		"burglary":            280,
		"larceny":             1200,
		"motor_vehicle_theft": 150,
		"violent_crime":       305,
		"property_crime":      1630,
	}, stats)
}

func TestStatsFor_UnknownStateFallsBack(t *testing.T) {
	stats := StatsFor("ZZ")
	assert.Equal(t, 5, stats["homicide"])
	assert.Equal(t, 1100, stats["property_crime"])
	assert.NotContains(t, stats, "year")
}

func TestStatsFor_StateRecordsCarryNoYear(t *testing.T) {
	for code := range stateStats {
		require.NotContains(t, stateStats[code], "year", "state %s", code)
		require.Len(t, stateStats[code], 8, "state %s", code)
	}
}

func TestDemoStats_CarriesYear(t *testing.T) {
	stats := DemoStats()
	assert.Equal(t, 2023, stats["year"])
	assert.Equal(t, 420, stats["violent_crime"])
	assert.Len(t, stats, 9)
}
