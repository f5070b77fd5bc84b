package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"weathertrack/internal/errors"
	"weathertrack/internal/middleware"
	"weathertrack/internal/service"
)

// FavoriteHandler handles favorite-location endpoints.
type FavoriteHandler struct {
	locationService service.LocationService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(locationService service.LocationService) *FavoriteHandler {
	return &FavoriteHandler{locationService: locationService}
}

// AddFavoriteRequest represents a new favorite location. Coordinates are
// pointers so that a present zero value (the equator, the prime meridian) is
// distinguishable from a missing field.
type AddFavoriteRequest struct {
	LocationName string   `json:"location_name" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
}

// List godoc
// @Summary List the current user's favorite locations
// @Tags favorites
// @Produce json
// @Success 200 {array} model.FavoriteLocation
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	uid, _ := middleware.UserID(c)
	locations, err := h.locationService.ListFavorites(c.Request().Context(), uid)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, locations)
}

// Add godoc
// @Summary Add a favorite location
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body AddFavoriteRequest true "Location data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Missing required fields",
			Code:  "MISSING_FIELDS",
		})
	}

	uid, _ := middleware.UserID(c)
	loc, err := h.locationService.AddFavorite(c.Request().Context(), uid, req.LocationName, *req.Latitude, *req.Longitude)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Location added successfully",
		"location": loc,
	})
}

// Delete godoc
// @Summary Delete a favorite location
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionToken
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	uid, _ := middleware.UserID(c)
	if err := h.locationService.DeleteFavorite(c.Request().Context(), uid, uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Location deleted successfully",
	})
}
