package server

import (
	"math/rand/v2"
	"time"

	"aggregat4/jwttoken/internal/domain"

	"github.com/google/uuid"
)

var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild", "Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

const (
	minTemperatureC = -20
	maxTemperatureC = 55 // exclusive
)

// ForecastGenerator produces mock forecasts starting the day after today.
type ForecastGenerator struct {
	Now     func() time.Time
	IntN    func(n int) int
	NewGuid func() string
}

func NewForecastGenerator() *ForecastGenerator {
	return &ForecastGenerator{
		Now:     time.Now,
		IntN:    rand.IntN,
		NewGuid: uuid.NewString,
	}
}

func (g *ForecastGenerator) Generate(count int) []domain.WeatherForecast {
	today := g.Now()
	forecasts := make([]domain.WeatherForecast, count)
	for i := range forecasts {
		forecasts[i] = domain.WeatherForecast{
			Date:         today.AddDate(0, 0, i+1).Format(time.DateOnly),
			TemperatureC: minTemperatureC + g.IntN(maxTemperatureC-minTemperatureC),
			Summary:      Summaries[g.IntN(len(Summaries))],
			Guid:         g.NewGuid(),
		}
	}
	return forecasts
}
