package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"globetrotter/cmd/fx/account_fx"
	"globetrotter/cmd/fx/config_fx"
	"globetrotter/cmd/fx/controllers_fx"
	"globetrotter/cmd/fx/dashboard"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/geo_fx"
	"globetrotter/cmd/fx/itinerary_fx"
	"globetrotter/cmd/fx/logger_fx"
	"globetrotter/cmd/fx/memcache_fx"
	"globetrotter/cmd/fx/seed_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/api"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

// @title GlobeTrotter API
// @version 1.0
// @description Travel planning API: accounts, Indian reference data, trips and itineraries.
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		geo_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		dashboard.Module,
		seed_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
			go serve(srv, ln, shutdowner, logger)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

// serve blocks until the server stops. Any failure other than a requested
// shutdown stops the whole app rather than leaving it up without a listener.
func serve(srv *http.Server, ln net.Listener, shutdowner fx.Shutdowner, logger *zap.Logger) {
	err := srv.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
	if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
		logger.Error("request app shutdown", zap.Error(err))
	}
}

type routerParams struct {
	fx.In

	Config    *config.Config
	Logger    *zap.Logger
	JWT       *utils.JWTManager
	Store     mem.Store
	Redis     *redis.Client
	Accounts  *controllers.AccountController
	Geo       *controllers.GeoController
	Trips     *controllers.TripController
	Itinerary *controllers.ItineraryController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

func ProvideRouter(p routerParams) *gin.Engine {
	if !p.Config.Server.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	return api.NewRouter(api.Dependencies{
		Logger:           p.Logger,
		JWT:              p.JWT,
		Store:            p.Store,
		Redis:            p.Redis,
		RateLimitRPS:     p.Config.Security.RateLimitRPS,
		CORSAllowOrigins: p.Config.Security.CORSAllowOrigins,
		Accounts:         p.Accounts,
		Geo:              p.Geo,
		Trips:            p.Trips,
		Itinerary:        p.Itinerary,
		Dashboard:        p.Dashboard,
		Health:           p.Health,
	})
}
