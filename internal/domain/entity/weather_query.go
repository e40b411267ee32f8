package entity

// UnitSystem is the measurement convention sent to the weather API.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// WeatherQuery is one user request: a free-form city name and a unit system.
type WeatherQuery struct {
	City  string     `json:"city"`
	Units UnitSystem `json:"units"`
}
