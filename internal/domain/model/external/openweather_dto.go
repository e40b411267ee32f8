package external

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResponseCode is the "cod" field of OpenWeatherMap payloads. The API sends it as a
// number on success and as a string on errors.
type ResponseCode int

func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid cod %s: %w", data, err)
	}
	*c = ResponseCode(code)
	return nil
}

func (c ResponseCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(c))
}

// WeatherConditionDTO is one entry of the "weather" array.
// Only the fields read by the mapper are decoded, so unused numeric fields cannot fail a lookup.
type WeatherConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO carries temperature and humidity; pointers tell a missing field apart from zero.
type MainDTO struct {
	Temp     *float64 `json:"temp"`
	Humidity *float64 `json:"humidity"`
}

// WindDTO carries wind speed in m/s (metric) or mph (imperial).
type WindDTO struct {
	Speed *float64 `json:"speed"`
}

// CurrentWeatherResponse represents the response of GET /weather
type CurrentWeatherResponse struct {
	Cod      ResponseCode          `json:"cod"`
	Name     string                `json:"name"`
	Weather  []WeatherConditionDTO `json:"weather"`
	Main     *MainDTO              `json:"main"`
	Wind     *WindDTO              `json:"wind"`
	Timezone *int                  `json:"timezone"`
}

// ForecastSampleDTO is one 3-hour step of GET /forecast
type ForecastSampleDTO struct {
	DtTxt   string                `json:"dt_txt"`
	Main    *MainDTO              `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
}

// ForecastResponse represents the response of GET /forecast
type ForecastResponse struct {
	Cod  ResponseCode        `json:"cod"`
	List []ForecastSampleDTO `json:"list"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API
type APIErrorResponse struct {
	Cod     ResponseCode `json:"cod"`
	Message string       `json:"message"`
}
