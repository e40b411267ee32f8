package weather

import (
	"context"

	"weather-app/internal/domain/model"
)

type UseCase interface {
	// Search fetches current conditions and forecast for city and formats the report.
	// rawUnit is the user's unit selector ('c' or 'f'); anything else falls back to Celsius.
	Search(ctx context.Context, city string, rawUnit string) (*model.WeatherReport, error)

	// SearchRecent re-runs Search for the city at index in the recent searches
	SearchRecent(ctx context.Context, index int, rawUnit string) (*model.WeatherReport, error)

	// RecentSearches returns the successfully searched cities, oldest first
	RecentSearches() []string

	// LatestReport returns the report of the most recently submitted search that completed
	LatestReport() (*model.WeatherReport, bool)
}
