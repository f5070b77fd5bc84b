package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "weathertrack/docs" // swagger docs

	"weathertrack/internal/auth"
	"weathertrack/internal/cache"
	"weathertrack/internal/config"
	"weathertrack/internal/db"
	"weathertrack/internal/handler"
	"weathertrack/internal/model"
	"weathertrack/internal/repository"
	"weathertrack/internal/router"
	"weathertrack/internal/service"
)

// @title Weathertrack API
// @version 1.0
// @description Personal weather-tracking service: favorite locations and stored weather snapshots.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Opaque session token issued at login.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.CurrentWeather{},
			&model.ForecastWeather{},
			&model.HistoricalWeather{},
			&model.FavoriteLocation{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FavoriteLocation{},
		&model.CurrentWeather{},
		&model.ForecastWeather{},
		&model.HistoricalWeather{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	var sessions auth.SessionStore
	if cfg.RedisAddr != "" {
		sessions = auth.NewRedisSessionStore(cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
	} else {
		sessions, err = auth.NewMemorySessionStore(auth.SessionTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("session store init")
		}
		log.Info().Msg("using in-memory session store")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	weatherRepo := repository.NewWeatherRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, auth.SHA256Hasher{}, sessions)
	locationService := service.NewLocationService(locationRepo)
	weatherService := service.NewWeatherService(locationRepo, weatherRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(locationService)
	weatherHandler := handler.NewWeatherHandler(weatherService)

	e := echo.New()
	router.Register(e, sessions, authHandler, favoriteHandler, weatherHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
