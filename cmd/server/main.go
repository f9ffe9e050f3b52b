package main

import (
	"database/sql"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/AzmathBegum/finance-tracker/internal/api"
	"github.com/AzmathBegum/finance-tracker/internal/cache"
	"github.com/AzmathBegum/finance-tracker/internal/config"
	"github.com/AzmathBegum/finance-tracker/internal/events"
	"github.com/AzmathBegum/finance-tracker/internal/repository"
	"github.com/AzmathBegum/finance-tracker/internal/service"
	"github.com/AzmathBegum/finance-tracker/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Info().Msg("Connected to database")
				return db, nil
			}
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("Failed to connect to database, retrying")
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}

	if err := migrations.AutoMigrateUsers(3, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate users table")
	}
	if err := migrations.AutoMigrateTransactions(3, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate transactions table")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	insightsCache := cache.NewInsightsCache(rdb, cfg.InsightsCacheTTL)
	publisher := events.NewPublisher(config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))

	userRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	txService := service.NewTransactionService(txRepo, publisher, insightsCache)
	insightsService := service.NewInsightsService(txRepo, insightsCache)

	authHandler := api.NewAuthHandler(authService)
	txHandler := api.NewTransactionHandler(txService)
	insightsHandler := api.NewInsightsHandler(insightsService)

	e := echo.New()
	e.HideBanner = true

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RateLimit),
				Burst:     cfg.RateBurst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "finance-tracker",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	protected := e.Group("", api.JWTMiddleware(cfg.JWTSecret))
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.GET("/transactions/:id", txHandler.Get)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)
	protected.GET("/insights", insightsHandler.Get)

	e.Logger.Fatal(e.Start(cfg.HTTPAddr))
}
