package presenter

import (
	"strings"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
	"weather-app/pkg/util/dateutils"
)

// Formatter turns fetched entities into display records
type Formatter struct {
	clock dateutils.Clock
}

// NewFormatter creates a Formatter reading the current instant from clock
func NewFormatter(clock dateutils.Clock) *Formatter {
	if clock == nil {
		clock = dateutils.SystemClock{}
	}
	return &Formatter{clock: clock}
}

// FormatCurrent builds the report lines for the current conditions of city
func (f *Formatter) FormatCurrent(city string, units Units, current *entity.CurrentConditions) *model.WeatherReport {
	icon := IconFor(current.Category)

	report := &model.WeatherReport{
		City:        city,
		Title:       msg.GetMessage("weather.title", Capitalize(city)),
		Condition:   msg.GetMessage("weather.condition", current.Category, Capitalize(current.Description)),
		Temperature: msg.GetMessage("weather.temperature", roundHalfEven(current.Temperature), units.Label),
		Humidity:    msg.GetMessage("weather.humidity", formatNumber(current.Humidity)),
		WindSpeed:   msg.GetMessage("weather.wind-speed", formatNumber(current.WindSpeed), units.WindUnit()),
		LocalTime:   msg.GetMessage("weather.local-time", dateutils.LocalTime(f.clock.Now(), current.TimezoneOffset)),
		Unit: model.UnitDTO{
			System:   string(units.System),
			Label:    units.Label,
			Fallback: units.Fallback,
		},
		Icon: model.IconDTO{
			Key:  string(icon),
			File: icon.File(),
		},
		Forecast: []model.ForecastDayDTO{},
	}
	report.Text = strings.Join([]string{
		report.Title,
		report.Condition,
		report.Temperature,
		report.Humidity,
		report.WindSpeed,
		report.LocalTime,
	}, "\n")
	return report
}

// FormatForecast converts forecast days into display boxes. forecastUnits is the unit
// system the forecast was fetched in, which may differ from the current conditions.
func (f *Formatter) FormatForecast(forecast entity.ForecastSet, forecastUnits Units) []model.ForecastDayDTO {
	days := make([]model.ForecastDayDTO, 0, len(forecast))
	for _, day := range forecast {
		days = append(days, model.ForecastDayDTO{
			DayOfWeek:   day.DayOfWeek,
			Date:        day.Date.Format(dateutils.DateLayout),
			Temperature: msg.GetMessage("weather.forecast-temperature", formatNumber(day.Temperature), forecastUnits.Symbol()),
			Description: Capitalize(day.Description),
		})
	}
	return days
}

// ForecastUnavailable marks report as having no forecast
func ForecastUnavailable(report *model.WeatherReport) {
	report.Forecast = []model.ForecastDayDTO{}
	report.ForecastMessage = msg.GetMessage("weather.forecast-unavailable")
}
