package weathercontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(insights []Insight) []string {
	out := make([]string, 0, len(insights))
	for _, i := range insights {
		out = append(out, i.Title)
	}
	return out
}

func TestInsightsHeat(t *testing.T) {
	got := GenerateInsights(38, 50, 2, "Clear")
	assert.Contains(t, titles(got), "High Temperature Alert")
	assert.Contains(t, titles(got), "Clear Weather")
}

func TestInsightsCold(t *testing.T) {
	got := GenerateInsights(2, 50, 2, "Clouds")
	assert.Contains(t, titles(got), "Cold Weather Alert")
	assert.NotContains(t, titles(got), "Optimal Temperature")
}

func TestInsightsOptimalRange(t *testing.T) {
	for _, temp := range []float64{20, 25, 30} {
		got := GenerateInsights(temp, 50, 2, "Clouds")
		assert.Contains(t, titles(got), "Optimal Temperature", "temp %.0f", temp)
	}
	// Just outside the band: no temperature insight at all.
	got := GenerateInsights(31, 50, 2, "Clouds")
	assert.NotContains(t, titles(got), "Optimal Temperature")
	assert.NotContains(t, titles(got), "High Temperature Alert")
}

func TestInsightsHumidity(t *testing.T) {
	high := GenerateInsights(25, 85, 2, "Clouds")
	assert.Contains(t, titles(high), "High Humidity")

	low := GenerateInsights(25, 20, 2, "Clouds")
	assert.Contains(t, titles(low), "Low Humidity")

	mid := GenerateInsights(25, 50, 2, "Clouds")
	assert.NotContains(t, titles(mid), "High Humidity")
	assert.NotContains(t, titles(mid), "Low Humidity")
}

func TestInsightsRain(t *testing.T) {
	got := GenerateInsights(25, 50, 2, "Rain")
	assert.Contains(t, titles(got), "Rainfall Detected")
	assert.NotContains(t, titles(got), "Clear Weather")
}

func TestInsightsWind(t *testing.T) {
	calm := GenerateInsights(25, 50, 9, "Clouds")
	assert.NotContains(t, titles(calm), "Strong Winds")

	windy := GenerateInsights(25, 50, 11, "Clouds")
	assert.Contains(t, titles(windy), "Strong Winds")
}

func TestInsightsAlwaysIncludeMarketImpact(t *testing.T) {
	got := GenerateInsights(25, 50, 2, "Clouds")
	require.NotEmpty(t, got)
	assert.Equal(t, "Market Impact", got[len(got)-1].Title)
}
