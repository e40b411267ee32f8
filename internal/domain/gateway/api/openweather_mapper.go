package api

import (
	"fmt"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/util/dateutils"
)

const (
	successCode = 200

	// forecastStride picks one 3-hour sample per 24 hours
	forecastStride = 8
	forecastDays   = 5
)

// toCurrentConditions converts the current weather payload to an entity
func toCurrentConditions(resp *external.CurrentWeatherResponse) (*entity.CurrentConditions, error) {
	if resp.Cod != successCode {
		return nil, fmt.Errorf("%w: cod %d", ErrNotFound, resp.Cod)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather[0]", ErrMalformedResponse)
	}
	if resp.Main == nil || resp.Main.Temp == nil || resp.Main.Humidity == nil {
		return nil, fmt.Errorf("%w: missing main.temp or main.humidity", ErrMalformedResponse)
	}
	if resp.Wind == nil || resp.Wind.Speed == nil {
		return nil, fmt.Errorf("%w: missing wind.speed", ErrMalformedResponse)
	}
	if resp.Timezone == nil {
		return nil, fmt.Errorf("%w: missing timezone", ErrMalformedResponse)
	}

	return &entity.CurrentConditions{
		Category:       resp.Weather[0].Main,
		Description:    resp.Weather[0].Description,
		Temperature:    *resp.Main.Temp,
		Humidity:       *resp.Main.Humidity,
		WindSpeed:      *resp.Wind.Speed,
		TimezoneOffset: *resp.Timezone,
	}, nil
}

// toForecastSet converts the sampled forecast entries to entities
func toForecastSet(resp *external.ForecastResponse) (entity.ForecastSet, error) {
	if resp.Cod != 0 && resp.Cod != successCode {
		return nil, fmt.Errorf("%w: cod %d", ErrNotFound, resp.Cod)
	}

	samples, err := selectDailySamples(resp.List)
	if err != nil {
		return nil, err
	}

	forecast := make(entity.ForecastSet, 0, len(samples))
	for _, sample := range samples {
		day, err := toForecastDay(sample)
		if err != nil {
			return nil, err
		}
		forecast = append(forecast, day)
	}
	return forecast, nil
}

// selectDailySamples returns the samples at positions 0, 8, 16, 24 and 32
func selectDailySamples[T any](samples []T) ([]T, error) {
	required := (forecastDays-1)*forecastStride + 1
	if len(samples) < required {
		return nil, fmt.Errorf("%w: %d forecast samples, need at least %d", ErrMalformedResponse, len(samples), required)
	}

	selected := make([]T, 0, forecastDays)
	for i := 0; i < forecastDays; i++ {
		selected = append(selected, samples[i*forecastStride])
	}
	return selected, nil
}

func toForecastDay(sample external.ForecastSampleDTO) (entity.ForecastDay, error) {
	date, err := dateutils.ParseDate(sample.DtTxt)
	if err != nil {
		return entity.ForecastDay{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if sample.Main == nil || sample.Main.Temp == nil {
		return entity.ForecastDay{}, fmt.Errorf("%w: sample %s missing main.temp", ErrMalformedResponse, sample.DtTxt)
	}
	if len(sample.Weather) == 0 {
		return entity.ForecastDay{}, fmt.Errorf("%w: sample %s missing weather[0]", ErrMalformedResponse, sample.DtTxt)
	}

	return entity.ForecastDay{
		DayOfWeek:   dateutils.DayOfWeek(date),
		Date:        date,
		Temperature: *sample.Main.Temp,
		Description: sample.Weather[0].Description,
	}, nil
}
