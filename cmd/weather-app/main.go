package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-app/configs"
	_ "weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	weatherapi "weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/history"
	"weather-app/internal/domain/presenter"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/internal/infra/ratelimit"
	pkghttp "weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
	"weather-app/pkg/util/dateutils"
)

// @title weather-app
// @version 1.0
// @description Current weather and 5-day forecast lookup backed by OpenWeatherMap.
// @BasePath /weather-app
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	limiterGateway, closeLimiter, err := ratelimit.NewLimiterGateway()
	if err != nil {
		log.Fatalf("Failed to create rate limiter: %v", err)
	}
	defer closeLimiter()

	// Init Gateway
	apiKey := resource.GetString("weather.api.key")
	if apiKey == "" {
		apiKey = configs.Env.WeatherAPIKey
	}
	if apiKey == "" {
		log.Warn("WEATHER_API_KEY is not set, every lookup will fail")
	}

	openWeatherGateway := weatherapi.NewWeatherGateway(
		resource.GetString("weather.api.base-url"),
		apiKey,
		pkghttp.ClientOptions{
			ConnectionTimeout: resource.GetDuration("weather.api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("weather.api.read-timeout"),
			Logger:            pkghttp.NewZapHTTPLogger(resource.GetBool("weather.api.log-bodies")),
		},
	)
	weatherGateway := weatherapi.NewRateLimitedWeatherGateway(openWeatherGateway, limiterGateway)

	// Init UseCase
	recentSearches := history.NewRecentSearches(resource.GetInt("weather.recent-searches.max-size"))
	formatter := presenter.NewFormatter(dateutils.SystemClock{})
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, recentSearches, formatter, resource.GetBool("weather.forecast.follow-unit"))
	healthUseCase := health.NewHealthUseCase(weatherGateway, limiterGateway)

	// Init Controller
	weatherController := controller.NewWeatherController(api, weatherUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Failed to shutdown server: %v", err)
	}
	log.Info(msg.GetMessage("app.stop"))
}
