package presenter

import (
	"strings"

	"weather-app/internal/domain/entity"
)

const (
	CelsiusLabel    = "Celsius"
	FahrenheitLabel = "Fahrenheit"
)

// Units is the outcome of resolving a raw unit selector
type Units struct {
	System entity.UnitSystem
	Label  string
	// Fallback is set when the selector was not recognized and Celsius was assumed
	Fallback bool
}

// ResolveUnits maps 'c' to metric and 'f' to imperial, case-insensitively.
// Any other input, including empty, resolves to metric with Fallback set.
func ResolveUnits(raw string) Units {
	switch strings.ToLower(raw) {
	case "c":
		return Units{System: entity.Metric, Label: CelsiusLabel}
	case "f":
		return Units{System: entity.Imperial, Label: FahrenheitLabel}
	default:
		return Units{System: entity.Metric, Label: CelsiusLabel, Fallback: true}
	}
}

// WindUnit is m/s for Celsius and mph otherwise
func (u Units) WindUnit() string {
	if u.Label == CelsiusLabel {
		return "m/s"
	}
	return "mph"
}

// Symbol is the single letter shown after the degree sign
func (u Units) Symbol() string {
	if u.System == entity.Imperial {
		return "F"
	}
	return "C"
}
