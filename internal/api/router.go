package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/falaklabs/natal-api/docs"
	"github.com/falaklabs/natal-api/internal/api/handler"
	"github.com/falaklabs/natal-api/internal/api/middleware"
	"github.com/falaklabs/natal-api/internal/core/ports"
	"github.com/falaklabs/natal-api/internal/core/service"
	"github.com/falaklabs/natal-api/internal/infrastructure/config"
	mongodb "github.com/falaklabs/natal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/falaklabs/natal-api/internal/infrastructure/db/redis"
	"github.com/falaklabs/natal-api/internal/infrastructure/ephemeris"
	"github.com/falaklabs/natal-api/internal/infrastructure/geocoding"
	"github.com/falaklabs/natal-api/internal/infrastructure/http/handlers"
	"github.com/falaklabs/natal-api/internal/infrastructure/timezone"
	"github.com/falaklabs/natal-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, error) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("natal"))

	// --- Collaborators ---
	geocoder := geocoding.NewOpenCageClient(geocoding.Config{
		APIKey:  cfg.Geocoding.APIKey,
		BaseURL: cfg.Geocoding.BaseURL,
		Timeout: cfg.Geocoding.Timeout,
	}, log)

	ephClient := ephemeris.NewClient(ephemeris.Config{
		BaseURL: cfg.Ephemeris.BaseURL,
		Timeout: cfg.Ephemeris.Timeout,
	})

	tzResolver, err := timezone.NewResolver(cfg.Chart.DSTPolicy)
	if err != nil {
		return nil, err
	}

	var cache ports.ChartCache
	if cfg.Chart.CacheTTL > 0 {
		cache = redisdb.NewChartCache(rdb, cfg.Chart.CacheTTL, log)
	}

	// --- Services and handlers ---
	chartService, err := service.NewChartService(
		geocoder, ephClient, tzResolver, cache,
		cfg.Chart.HouseSystem, cfg.Chart.AspectOrb, log,
	)
	if err != nil {
		return nil, err
	}
	chartHandler := handler.NewChartHandler(chartService)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Chart routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/charts", chartHandler.Compute)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb, ephClient)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
