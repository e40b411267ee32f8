package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/msg"
	"weather-app/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.Search)
	controller.api.GET("/weather/recent", controller.RecentSearches)
	controller.api.GET("/weather/recent/:index", controller.SearchRecent)
	controller.api.GET("/weather/latest", controller.LatestReport)
}

// Search godoc
// @Summary Get weather for a city
// @Description Fetch current conditions and the 5-day forecast for a city and format them for display
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param unit query string false "Unit selector: c for Celsius, f for Fahrenheit" default(c)
// @Success 200 {object} model.WeatherReport "Formatted weather report"
// @Failure 404 {object} model.ErrorDTO "City not found or an error occurred"
// @Router /weather [get]
func (controller *WeatherController) Search(c echo.Context) error {
	report, err := controller.useCase.Search(requestContext(c), c.QueryParam("city"), c.QueryParam("unit"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, report)
}

// RecentSearches godoc
// @Summary List recent searches
// @Description Cities whose lookup succeeded since the process started, oldest first
// @Tags weather
// @Produce json
// @Success 200 {object} model.RecentSearchesDTO "Recent searches"
// @Router /weather/recent [get]
func (controller *WeatherController) RecentSearches(c echo.Context) error {
	return c.JSON(http.StatusOK, model.RecentSearchesDTO{Cities: controller.useCase.RecentSearches()})
}

// SearchRecent godoc
// @Summary Repeat a recent search
// @Description Fetch weather again for the city at the given position of the recent searches
// @Tags weather
// @Produce json
// @Param index path int true "Position in the recent searches, starting at 0"
// @Param unit query string false "Unit selector: c for Celsius, f for Fahrenheit" default(c)
// @Success 200 {object} model.WeatherReport "Formatted weather report"
// @Failure 404 {object} model.ErrorDTO "City not found or an error occurred"
// @Router /weather/recent/{index} [get]
func (controller *WeatherController) SearchRecent(c echo.Context) error {
	index, err := numberutils.ToIndex(c.Param("index"))
	if err != nil {
		return notFound(c)
	}

	report, err := controller.useCase.SearchRecent(requestContext(c), index, c.QueryParam("unit"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, report)
}

// LatestReport godoc
// @Summary Get the latest displayed report
// @Description The report of the most recently submitted search that completed
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherReport "Latest report"
// @Success 204 "No search completed yet"
// @Router /weather/latest [get]
func (controller *WeatherController) LatestReport(c echo.Context) error {
	report, ok := controller.useCase.LatestReport()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, report)
}

// requestContext carries the X-Request-Id set by the request id middleware into the use case
func requestContext(c echo.Context) context.Context {
	return weather.ContextWithRequestID(c.Request().Context(), c.Response().Header().Get(echo.HeaderXRequestID))
}

// notFound is the single user-facing failure for every lookup error
func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, model.ErrorDTO{Error: msg.GetMessage("weather.not-found")})
}
