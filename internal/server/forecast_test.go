package server

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateForecasts(t *testing.T) {
	today := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)
	guids := 0
	generator := &ForecastGenerator{
		Now:  func() time.Time { return today },
		IntN: func(n int) int { return n - 1 },
		NewGuid: func() string {
			guids++
			return "guid-" + strconv.Itoa(guids)
		},
	}

	forecasts := generator.Generate(5)
	require.Len(t, forecasts, 5)
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02", "2024-03-03"},
		[]string{forecasts[0].Date, forecasts[1].Date, forecasts[2].Date, forecasts[3].Date, forecasts[4].Date})
	for i, forecast := range forecasts {
		assert.Equal(t, 54, forecast.TemperatureC)
		assert.Equal(t, "Scorching", forecast.Summary)
		assert.Equal(t, "guid-"+strconv.Itoa(i+1), forecast.Guid)
	}
}

func TestGenerateForecastsStaysInRange(t *testing.T) {
	generator := NewForecastGenerator()
	for range 20 {
		for _, forecast := range generator.Generate(5) {
			assert.GreaterOrEqual(t, forecast.TemperatureC, -20)
			assert.Less(t, forecast.TemperatureC, 55)
			assert.Contains(t, Summaries, forecast.Summary)
			assert.NotEmpty(t, forecast.Guid)
		}
	}
}
