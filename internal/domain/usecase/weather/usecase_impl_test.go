package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/history"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/presenter"
	pkghttp "weather-app/pkg/http"
	"weather-app/pkg/util/dateutils"
)

type stubGateway struct {
	mu            sync.Mutex
	currentCalls  []entity.WeatherQuery
	forecastCalls []entity.WeatherQuery
	current       func(query entity.WeatherQuery) (*entity.CurrentConditions, error)
	forecast      func(query entity.WeatherQuery) (entity.ForecastSet, error)
}

func (s *stubGateway) FetchCurrent(_ context.Context, query entity.WeatherQuery) (*entity.CurrentConditions, error) {
	s.mu.Lock()
	s.currentCalls = append(s.currentCalls, query)
	s.mu.Unlock()
	return s.current(query)
}

func (s *stubGateway) FetchForecast(_ context.Context, query entity.WeatherQuery) (entity.ForecastSet, error) {
	s.mu.Lock()
	s.forecastCalls = append(s.forecastCalls, query)
	s.mu.Unlock()
	if s.forecast == nil {
		return fiveDays(), nil
	}
	return s.forecast(query)
}

func (s *stubGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func londonRain(entity.WeatherQuery) (*entity.CurrentConditions, error) {
	return &entity.CurrentConditions{
		Category: "Rain", Description: "light rain", Temperature: 15.4, Humidity: 80, WindSpeed: 3.1, TimezoneOffset: 3600,
	}, nil
}

func fiveDays() entity.ForecastSet {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	set := make(entity.ForecastSet, 0, 5)
	for i := 0; i < 5; i++ {
		date := start.AddDate(0, 0, i)
		set = append(set, entity.ForecastDay{DayOfWeek: dateutils.DayOfWeek(date), Date: date, Temperature: float64(10 + i), Description: "few clouds"})
	}
	return set
}

func newUseCase(gw api.WeatherGateway, followForecastUnit bool) (UseCase, *history.RecentSearches) {
	recent := history.NewRecentSearches(0)
	formatter := presenter.NewFormatter(dateutils.FixedClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	return NewWeatherUseCase(gw, recent, formatter, followForecastUnit), recent
}

func TestSearchLondonEndToEnd(t *testing.T) {
	gw := &stubGateway{current: londonRain}
	uc, recent := newUseCase(gw, false)

	report, err := uc.Search(context.Background(), "London", "c")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	for _, want := range []string{
		"Condition: Rain (Light rain)",
		"Temperature: 15°Celsius",
		"Humidity: 80%",
		"Wind Speed: 3.1 m/s",
		"Local Time: 2024-03-01 11:00:00",
	} {
		if !strings.Contains(report.Text, want) {
			t.Errorf("report text does not contain %q:\n%s", want, report.Text)
		}
	}
	if got := recent.List(); !reflect.DeepEqual(got, []string{"London"}) {
		t.Errorf("recent = %v, want [London]", got)
	}
	if len(report.Forecast) != 5 || report.Forecast[0].Temperature != "10°C" || report.Forecast[0].DayOfWeek != "Friday" {
		t.Errorf("forecast = %+v", report.Forecast)
	}
	if report.RequestID == "" {
		t.Error("expected a request id")
	}
}

func TestSearchTwiceKeepsSingleRecentEntry(t *testing.T) {
	uc, recent := newUseCase(&stubGateway{current: londonRain}, false)

	for i := 0; i < 2; i++ {
		if _, err := uc.Search(context.Background(), "London", "c"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}

	if got := recent.List(); !reflect.DeepEqual(got, []string{"London"}) {
		t.Errorf("recent = %v, want [London]", got)
	}
}

func TestSearchFailureDoesNotMutateRecentSearches(t *testing.T) {
	kinds := []error{api.ErrNotFound, api.ErrTransport, api.ErrMalformedResponse}

	for _, kind := range kinds {
		t.Run(kind.Error(), func(t *testing.T) {
			gw := &stubGateway{current: func(entity.WeatherQuery) (*entity.CurrentConditions, error) {
				return nil, fmt.Errorf("wrapped: %w", kind)
			}}
			uc, recent := newUseCase(gw, false)

			_, err := uc.Search(context.Background(), "Atlantis", "c")
			if !errors.Is(err, kind) {
				t.Errorf("Search() error = %v, want %v", err, kind)
			}
			if recent.Len() != 0 {
				t.Errorf("recent = %v, want empty", recent.List())
			}
			if len(gw.forecastCalls) != 0 {
				t.Error("forecast must not be fetched after a failed current lookup")
			}
			if _, ok := uc.LatestReport(); ok {
				t.Error("latest report must stay empty")
			}
		})
	}
}

func TestSearchEmptyCitySkipsNetwork(t *testing.T) {
	gw := &stubGateway{current: londonRain}
	uc, _ := newUseCase(gw, false)

	_, err := uc.Search(context.Background(), "   ", "c")
	if !errors.Is(err, api.ErrNotFound) {
		t.Errorf("Search() error = %v, want ErrNotFound", err)
	}
	if len(gw.currentCalls) != 0 {
		t.Errorf("unexpected gateway calls %v", gw.currentCalls)
	}
}

func TestSearchUnits(t *testing.T) {
	tests := []struct {
		name             string
		rawUnit          string
		follow           bool
		wantCurrentUnits entity.UnitSystem
		wantForecastUnit entity.UnitSystem
		wantForecastTemp string
		wantFallback     bool
	}{
		{"celsius", "c", false, entity.Metric, entity.Metric, "10°C", false},
		{"fahrenheit keeps metric forecast", "F", false, entity.Imperial, entity.Metric, "10°C", false},
		{"fahrenheit follows to forecast", "f", true, entity.Imperial, entity.Imperial, "10°F", false},
		{"invalid falls back", "x", true, entity.Metric, entity.Metric, "10°C", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{current: londonRain}
			uc, _ := newUseCase(gw, tt.follow)

			report, err := uc.Search(context.Background(), "London", tt.rawUnit)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if gw.currentCalls[0].Units != tt.wantCurrentUnits {
				t.Errorf("current units = %s, want %s", gw.currentCalls[0].Units, tt.wantCurrentUnits)
			}
			if gw.forecastCalls[0].Units != tt.wantForecastUnit {
				t.Errorf("forecast units = %s, want %s", gw.forecastCalls[0].Units, tt.wantForecastUnit)
			}
			if report.Forecast[0].Temperature != tt.wantForecastTemp {
				t.Errorf("forecast temperature = %s, want %s", report.Forecast[0].Temperature, tt.wantForecastTemp)
			}
			if report.Unit.Fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", report.Unit.Fallback, tt.wantFallback)
			}
		})
	}
}

func TestSearchForecastFailureKeepsCurrentReport(t *testing.T) {
	gw := &stubGateway{
		current: londonRain,
		forecast: func(entity.WeatherQuery) (entity.ForecastSet, error) {
			return nil, api.ErrMalformedResponse
		},
	}
	uc, recent := newUseCase(gw, false)

	report, err := uc.Search(context.Background(), "London", "c")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if report.ForecastMessage != "Unable to retrieve forecast data." {
		t.Errorf("forecast message = %q", report.ForecastMessage)
	}
	if len(report.Forecast) != 0 {
		t.Errorf("forecast = %v, want empty", report.Forecast)
	}
	if !recent.Contains("London") {
		t.Error("London should be recorded after a successful current lookup")
	}
}

func TestSearchRecent(t *testing.T) {
	gw := &stubGateway{current: londonRain}
	uc, _ := newUseCase(gw, false)

	if _, err := uc.SearchRecent(context.Background(), 0, "c"); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("SearchRecent() on empty list error = %v", err)
	}

	_, _ = uc.Search(context.Background(), "London", "c")
	_, _ = uc.Search(context.Background(), "Paris", "c")

	report, err := uc.SearchRecent(context.Background(), 1, "f")
	if err != nil {
		t.Fatalf("SearchRecent() error = %v", err)
	}
	if report.City != "Paris" || report.Unit.Label != "Fahrenheit" {
		t.Errorf("report = %s %s", report.City, report.Unit.Label)
	}
	if got := uc.RecentSearches(); !reflect.DeepEqual(got, []string{"London", "Paris"}) {
		t.Errorf("RecentSearches() = %v", got)
	}
}

func TestLatestReportIgnoresStaleCompletion(t *testing.T) {
	slowEntered := make(chan struct{})
	releaseSlow := make(chan struct{})

	gw := &stubGateway{current: func(query entity.WeatherQuery) (*entity.CurrentConditions, error) {
		if query.City == "Slow" {
			close(slowEntered)
			<-releaseSlow
		}
		return londonRain(query)
	}}
	uc, _ := newUseCase(gw, false)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := uc.Search(context.Background(), "Slow", "c"); err != nil {
			t.Errorf("slow Search() error = %v", err)
		}
	}()

	<-slowEntered
	if _, err := uc.Search(context.Background(), "Fast", "c"); err != nil {
		t.Fatalf("fast Search() error = %v", err)
	}
	close(releaseSlow)
	<-done

	latest, ok := uc.LatestReport()
	if !ok || latest.City != "Fast" {
		t.Errorf("latest = %+v, want Fast", latest)
	}
}

func TestSearchUsesRequestIDFromContext(t *testing.T) {
	uc, _ := newUseCase(&stubGateway{current: londonRain}, false)

	report, err := uc.Search(ContextWithRequestID(context.Background(), "req-42"), "London", "c")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if report.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42", report.RequestID)
	}

	report, err = uc.Search(ContextWithRequestID(context.Background(), ""), "London", "c")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(report.RequestID) != 36 {
		t.Errorf("RequestID = %q, want a generated uuid", report.RequestID)
	}
}

func TestSearchAgainstOpenWeatherPayloads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") != "London" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		if r.URL.Path == "/forecast" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"cod":200,"weather":[{"id":500,"main":"Rain","description":"light rain"}],` +
			`"main":{"temp":15.4,"humidity":80},"wind":{"speed":3.1,"deg":45.5},"timezone":3600}`))
	}))
	defer server.Close()

	gw := api.NewWeatherGateway(server.URL, "key", pkghttp.ClientOptions{})
	uc, recent := newUseCase(gw, false)

	report, err := uc.Search(context.Background(), "London", "c")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	for _, want := range []string{"Condition: Rain (Light rain)", "Temperature: 15°Celsius", "Humidity: 80%", "Wind Speed: 3.1 m/s"} {
		if !strings.Contains(report.Text, want) {
			t.Errorf("report text does not contain %q:\n%s", want, report.Text)
		}
	}

	if _, err := uc.Search(context.Background(), "Atlantis", "c"); !errors.Is(err, api.ErrNotFound) {
		t.Errorf("Search(Atlantis) error = %v, want ErrNotFound", err)
	}
	if got := recent.List(); !reflect.DeepEqual(got, []string{"London"}) {
		t.Errorf("recent = %v, want [London]", got)
	}
}
