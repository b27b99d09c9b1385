package main

import (
	"context"
	"net/http"

	healthapp "github.com/adityarizkyr/health-tracker/application/health"
	userapp "github.com/adityarizkyr/health-tracker/application/user"
	"github.com/adityarizkyr/health-tracker/cmd/config"
	redisclient "github.com/adityarizkyr/health-tracker/cmd/redis"
	_ "github.com/adityarizkyr/health-tracker/docs"
	healthRepo "github.com/adityarizkyr/health-tracker/repository/health"
	redisRepo "github.com/adityarizkyr/health-tracker/repository/redis"
	txRepo "github.com/adityarizkyr/health-tracker/repository/tx"
	userRepo "github.com/adityarizkyr/health-tracker/repository/user"
	"github.com/adityarizkyr/health-tracker/thirdparty/gemini"
	"github.com/adityarizkyr/health-tracker/thirdparty/rabbitmq"
	"github.com/adityarizkyr/health-tracker/transport"
	"github.com/adityarizkyr/health-tracker/utils/logger"
	validatorx "github.com/adityarizkyr/health-tracker/utils/validator"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title HEALTH TRACKER API
// @version 1.0
// @description Health tracking API: accounts, daily entries, AI suggestions
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	validatorx.Init()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	HealthRepo := healthRepo.NewHealthRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// AI suggestion generator; reports unavailable without an API key
	geminiClient := gemini.NewClient(cfg)
	if !geminiClient.IsAvailable() {
		logger.Warn("GEMINI_API_KEY not set, health suggestions disabled")
	}

	// Optional audit event pipeline
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(context.Background()); err != nil {
			logger.Fatal("err start audit consumer", zap.Error(err))
		}
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, HealthRepo, TxRepo, RedisRepo, publisher)
	HealthApp := healthapp.NewHealthApp(cfg, UserRepo, HealthRepo, geminiClient, publisher)

	httpTransport := transport.NewTransport(UserApp, HealthApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
