package presenter

// IconKey identifies the icon a UI should draw for a condition category
type IconKey string

const (
	IconClear   IconKey = "clear"
	IconCloudy  IconKey = "cloudy"
	IconRainy   IconKey = "rainy"
	IconSnowy   IconKey = "snowy"
	IconDefault IconKey = "default"
)

var iconFiles = map[IconKey]string{
	IconClear:   "clear.png",
	IconCloudy:  "cloudy.png",
	IconRainy:   "rainy.png",
	IconSnowy:   "snowy.png",
	IconDefault: "weather-icon.png",
}

// IconFor is total: the four known categories get their own key, everything else the default.
// Matching is case-sensitive.
func IconFor(category string) IconKey {
	switch category {
	case "Clear":
		return IconClear
	case "Clouds":
		return IconCloudy
	case "Rain":
		return IconRainy
	case "Snow":
		return IconSnowy
	default:
		return IconDefault
	}
}

// File is the asset name of the icon
func (k IconKey) File() string {
	if file, ok := iconFiles[k]; ok {
		return file
	}
	return iconFiles[IconDefault]
}
