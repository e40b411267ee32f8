package entity

import "time"

// ForecastDay is one sampled entry of the 3-hourly forecast.
type ForecastDay struct {
	DayOfWeek   string    `json:"dayOfWeek"`
	Date        time.Time `json:"date"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
}

// ForecastSet holds one ForecastDay per day, in time order.
type ForecastSet []ForecastDay
