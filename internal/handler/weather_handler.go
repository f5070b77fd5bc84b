package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"weathertrack/internal/errors"
	"weathertrack/internal/middleware"
	"weathertrack/internal/model"
	"weathertrack/internal/service"
)

// WeatherHandler handles snapshot endpoints for the three variants. Each
// route is keyed by the owning location id; ownership is checked by the
// service before any snapshot is read or written.
type WeatherHandler struct {
	weatherService service.WeatherService
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(weatherService service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func locationParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("locationId"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid location id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// GetCurrent godoc
// @Summary Get the latest stored current weather for a location
// @Tags weather
// @Produce json
// @Param locationId path int true "Location ID"
// @Success 200 {object} model.CurrentWeather
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/current/{locationId} [get]
func (h *WeatherHandler) GetCurrent(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	uid, _ := middleware.UserID(c)

	snapshot, err := h.weatherService.GetCurrent(c.Request().Context(), uid, locID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, snapshot)
}

// StoreCurrent godoc
// @Summary Store a current weather snapshot for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path int true "Location ID"
// @Param request body model.Reading true "Weather reading"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/current/{locationId} [post]
func (h *WeatherHandler) StoreCurrent(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	var reading model.Reading
	if err := c.Bind(&reading); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	uid, _ := middleware.UserID(c)
	if err := h.weatherService.StoreCurrent(c.Request().Context(), uid, locID, reading); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "weather stored successfully",
	})
}

// GetForecast godoc
// @Summary List stored forecast snapshots for a location
// @Tags weather
// @Produce json
// @Param locationId path int true "Location ID"
// @Success 200 {array} model.ForecastWeather
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/forecast/{locationId} [get]
func (h *WeatherHandler) GetForecast(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	uid, _ := middleware.UserID(c)

	snapshots, err := h.weatherService.GetForecast(c.Request().Context(), uid, locID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, snapshots)
}

// StoreForecast godoc
// @Summary Store forecast snapshots for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path int true "Location ID"
// @Param request body []model.Reading true "Forecast readings"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/forecast/{locationId} [post]
func (h *WeatherHandler) StoreForecast(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	var readings []model.Reading
	if err := c.Bind(&readings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	uid, _ := middleware.UserID(c)
	if err := h.weatherService.StoreForecast(c.Request().Context(), uid, locID, readings); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "forecast stored successfully",
	})
}

// GetHistory godoc
// @Summary List stored historical snapshots for a location, newest first
// @Tags weather
// @Produce json
// @Param locationId path int true "Location ID"
// @Success 200 {array} model.HistoricalWeather
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/history/{locationId} [get]
func (h *WeatherHandler) GetHistory(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	uid, _ := middleware.UserID(c)

	snapshots, err := h.weatherService.GetHistory(c.Request().Context(), uid, locID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, snapshots)
}

// StoreHistory godoc
// @Summary Store historical snapshots for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path int true "Location ID"
// @Param request body []model.Reading true "Historical readings"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /weather/history/{locationId} [post]
func (h *WeatherHandler) StoreHistory(c echo.Context) error {
	locID, err := locationParam(c)
	if err != nil {
		return err
	}
	var readings []model.Reading
	if err := c.Bind(&readings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	uid, _ := middleware.UserID(c)
	if err := h.weatherService.StoreHistory(c.Request().Context(), uid, locID, readings); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "history stored successfully",
	})
}
