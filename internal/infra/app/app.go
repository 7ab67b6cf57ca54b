package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JeffreyEssien/cms/internal/core/port"
	"github.com/JeffreyEssien/cms/internal/infra/config"
	"github.com/JeffreyEssien/cms/internal/infra/database"
	kafkainfra "github.com/JeffreyEssien/cms/internal/infra/kafka"
	"github.com/JeffreyEssien/cms/internal/infra/logger"
	redisinfra "github.com/JeffreyEssien/cms/internal/infra/redis"
	"github.com/JeffreyEssien/cms/internal/infra/security"
	"github.com/JeffreyEssien/cms/internal/infra/telemetry"
	mongorepo "github.com/JeffreyEssien/cms/internal/repository/mongo"
	redisrepo "github.com/JeffreyEssien/cms/internal/repository/redis"
	"github.com/JeffreyEssien/cms/internal/transport/http/routes"
	"github.com/JeffreyEssien/cms/internal/usecase"
)

// Application wires the lead-capture service together and runs its HTTP
// server.
type Application struct {
	cfg       *config.AppConfig
	engine    *gin.Engine
	logger    *zap.Logger
	connector *database.Connector
	redis     *redisinfra.Client
	producer  *kafkainfra.Producer
}

func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	provider, err := telemetry.Attach(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	connector, err := database.NewConnector(cfg.Mongo, log)
	if err != nil {
		return nil, fmt.Errorf("init mongo connector: %w", err)
	}

	strategy, err := security.StrategyFor(cfg.Security.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("init credential strategy: %w", err)
	}

	// Redis backs the optional submission idempotency guard.
	var redisClient *redisinfra.Client
	var idempotency port.IdempotencyStore
	if cfg.Redis.Host != "" {
		redisClient, err = redisinfra.NewClient(cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		idempotency = redisrepo.NewIdempotencyStore(
			redisClient.Client(),
			cfg.Redis.IdempotencyPrefix,
			cfg.Redis.IdempotencyTTL,
			log,
		)
	} else {
		log.Info("redis not configured, submissions are not idempotency-guarded")
	}

	var producer *kafkainfra.Producer
	var eventPublisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafkainfra.NewProducer(cfg.Kafka, log)
		if err != nil {
			log.Warn("failed to init kafka producer, using stub publisher", zap.Error(err))
			eventPublisher = kafkainfra.NewStubPublisher(log)
		} else {
			eventPublisher = kafkainfra.NewEventPublisher(producer, cfg.App, log)
			log.Info("kafka event publisher initialized", zap.Strings("brokers", cfg.Kafka.Brokers))
		}
	} else {
		log.Info("kafka brokers not configured, using stub publisher")
		eventPublisher = kafkainfra.NewStubPublisher(log)
	}

	repos := mongorepo.NewRepositories(connector, log)

	inquiryService := usecase.NewInquiryService(repos.Inquiries, idempotency, eventPublisher, log)
	userService := usecase.NewUserService(repos.Users, strategy, eventPublisher, log)
	dashboardService := usecase.NewDashboardService(repos.Users, repos.Inquiries, log)

	deps := routes.Dependencies{
		Config:    cfg,
		Logger:    log,
		Telemetry: provider,
		Database:  connector,
		Services: routes.ServiceSet{
			Inquiries: inquiryService,
			Users:     userService,
			Dashboard: dashboardService,
		},
	}
	if redisClient != nil {
		deps.Cache = redisClient
	}

	engine := routes.Register(deps)

	return &Application{
		cfg:       cfg,
		engine:    engine,
		logger:    log,
		connector: connector,
		redis:     redisClient,
		producer:  producer,
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	defer func() {
		_ = a.logger.Sync()
	}()
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.connector.Close(closeCtx); err != nil {
			a.logger.Warn("close mongo connector", zap.Error(err))
		}
	}()
	defer func() {
		if a.redis != nil {
			_ = a.redis.Close()
		}
	}()
	defer func() {
		if a.producer != nil {
			_ = a.producer.Close()
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting cms API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}
