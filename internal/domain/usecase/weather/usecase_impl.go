package weather

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/history"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/presenter"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

type weatherUseCase struct {
	apiGateway         api.WeatherGateway
	recentSearches     *history.RecentSearches
	formatter          *presenter.Formatter
	followForecastUnit bool

	submitted atomic.Uint64

	mu        sync.Mutex
	latestSeq uint64
	latest    *model.WeatherReport
}

// NewWeatherUseCase wires the gateway, the recent searches list and the formatter.
// With followForecastUnit false the forecast is always fetched in metric.
func NewWeatherUseCase(apiGateway api.WeatherGateway, recentSearches *history.RecentSearches, formatter *presenter.Formatter, followForecastUnit bool) UseCase {
	return &weatherUseCase{
		apiGateway:         apiGateway,
		recentSearches:     recentSearches,
		formatter:          formatter,
		followForecastUnit: followForecastUnit,
	}
}

// Search fetches current conditions and forecast for city and formats the report
func (uc *weatherUseCase) Search(ctx context.Context, city string, rawUnit string) (*model.WeatherReport, error) {
	seq := uc.submitted.Add(1)
	requestID := requestIDFrom(ctx)
	city = strings.TrimSpace(city)

	units := presenter.ResolveUnits(rawUnit)
	if units.Fallback {
		log.Warn(msg.GetMessage("weather.unit-fallback", rawUnit),
			zap.String("request_id", requestID),
			zap.String("unit", rawUnit),
		)
	}

	if city == "" {
		return nil, fmt.Errorf("%w: empty city", api.ErrNotFound)
	}

	log.Info(msg.GetMessage("weather.search-start", city),
		zap.String("request_id", requestID),
		zap.String("city", city),
		zap.String("units", string(units.System)),
	)

	current, err := uc.apiGateway.FetchCurrent(ctx, entity.WeatherQuery{City: city, Units: units.System})
	if err != nil {
		log.Error(msg.GetMessage("weather.search-fail", city),
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.String("error_kind", api.ErrorKind(err)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.recentSearches.Add(city)

	report := uc.formatter.FormatCurrent(city, units, current)
	report.RequestID = requestID

	forecastUnits := presenter.ResolveUnits("c")
	if uc.followForecastUnit {
		forecastUnits = units
	}

	forecast, err := uc.apiGateway.FetchForecast(ctx, entity.WeatherQuery{City: city, Units: forecastUnits.System})
	if err != nil {
		log.Warn(msg.GetMessage("weather.forecast-fail", city),
			zap.String("request_id", requestID),
			zap.String("city", city),
			zap.String("error_kind", api.ErrorKind(err)),
			zap.Error(err),
		)
		presenter.ForecastUnavailable(report)
	} else {
		report.Forecast = uc.formatter.FormatForecast(forecast, forecastUnits)
	}

	uc.publish(seq, report)

	log.Info(msg.GetMessage("weather.search-done", city),
		zap.String("request_id", requestID),
		zap.String("city", city),
		zap.Int("forecast_days", len(report.Forecast)),
	)
	return report, nil
}

// SearchRecent re-runs Search for the city at index in the recent searches
func (uc *weatherUseCase) SearchRecent(ctx context.Context, index int, rawUnit string) (*model.WeatherReport, error) {
	city, ok := uc.recentSearches.Get(index)
	if !ok {
		return nil, fmt.Errorf("%w: no recent search at index %d", api.ErrNotFound, index)
	}
	return uc.Search(ctx, city, rawUnit)
}

// RecentSearches returns the successfully searched cities, oldest first
func (uc *weatherUseCase) RecentSearches() []string {
	return uc.recentSearches.List()
}

// LatestReport returns the report of the most recently submitted search that completed
func (uc *weatherUseCase) LatestReport() (*model.WeatherReport, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.latest, uc.latest != nil
}

// publish replaces the latest report unless a later-submitted search already published
func (uc *weatherUseCase) publish(seq uint64, report *model.WeatherReport) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq < uc.latestSeq {
		log.Debug(msg.GetMessage("weather.stale-report", report.City),
			zap.String("request_id", report.RequestID),
			zap.Uint64("seq", seq),
			zap.Uint64("latest_seq", uc.latestSeq),
		)
		return
	}
	uc.latestSeq = seq
	uc.latest = report
}
