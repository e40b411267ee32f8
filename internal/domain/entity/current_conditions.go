package entity

// CurrentConditions is built once from a current-weather response and not mutated afterwards.
type CurrentConditions struct {
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	WindSpeed      float64 `json:"windSpeed"`
	TimezoneOffset int     `json:"timezoneOffset"`
}
