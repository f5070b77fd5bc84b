package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weathertrack/internal/auth"
	"weathertrack/internal/handler"
	"weathertrack/internal/middleware"
)

// Register wires routes and middleware. Session resolution runs on every
// request; the guard is applied only to the protected group.
func Register(
	e *echo.Echo,
	sessions auth.SessionStore,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
	weatherHandler *handler.WeatherHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.ResolveSession(sessions))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// Protected routes
	secured := e.Group("", middleware.RequireAuth)

	secured.GET("/favorites", favoriteHandler.List)
	secured.POST("/favorites", favoriteHandler.Add)
	secured.DELETE("/favorites/:id", favoriteHandler.Delete)

	secured.POST("/update-password", authHandler.UpdatePassword)

	secured.GET("/weather/current/:locationId", weatherHandler.GetCurrent)
	secured.POST("/weather/current/:locationId", weatherHandler.StoreCurrent)
	secured.GET("/weather/forecast/:locationId", weatherHandler.GetForecast)
	secured.POST("/weather/forecast/:locationId", weatherHandler.StoreForecast)
	secured.GET("/weather/history/:locationId", weatherHandler.GetHistory)
	secured.POST("/weather/history/:locationId", weatherHandler.StoreHistory)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
