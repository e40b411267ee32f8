package model

// UnitDTO is the unit system resolved from the user's raw selector.
type UnitDTO struct {
	System string `json:"system"`
	Label  string `json:"label"`
	// Fallback is true when the raw selector was not recognized and Celsius was assumed
	Fallback bool `json:"fallback"`
}

// IconDTO names the icon a UI should render; the UI owns the loaded image.
type IconDTO struct {
	Key  string `json:"key"`
	File string `json:"file"`
}

// ForecastDayDTO is one display-ready forecast box.
type ForecastDayDTO struct {
	DayOfWeek   string `json:"dayOfWeek"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
}

// WeatherReport is the fully formatted display record for one search.
type WeatherReport struct {
	RequestID       string           `json:"requestId"`
	City            string           `json:"city"`
	Title           string           `json:"title"`
	Condition       string           `json:"condition"`
	Temperature     string           `json:"temperature"`
	Humidity        string           `json:"humidity"`
	WindSpeed       string           `json:"windSpeed"`
	LocalTime       string           `json:"localTime"`
	Text            string           `json:"text"`
	Unit            UnitDTO          `json:"unit"`
	Icon            IconDTO          `json:"icon"`
	Forecast        []ForecastDayDTO `json:"forecast"`
	ForecastMessage string           `json:"forecastMessage,omitempty"`
}

// RecentSearchesDTO lists previously searched cities, oldest first.
type RecentSearchesDTO struct {
	Cities []string `json:"cities"`
}

// ErrorDTO is the single user-facing failure payload.
type ErrorDTO struct {
	Error string `json:"error"`
}
