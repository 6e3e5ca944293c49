package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/pathclear/internal/pkg/circuitbreaker"
	"github.com/piresc/pathclear/internal/pkg/config"
	"github.com/piresc/pathclear/internal/pkg/database"
	"github.com/piresc/pathclear/internal/pkg/health"
	"github.com/piresc/pathclear/internal/pkg/logger"
	"github.com/piresc/pathclear/internal/pkg/metrics"
	"github.com/piresc/pathclear/internal/pkg/middleware"
	"github.com/piresc/pathclear/internal/pkg/models"
	natspkg "github.com/piresc/pathclear/internal/pkg/nats"
	nrpkg "github.com/piresc/pathclear/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/pathclear/internal/pkg/nsq"
	"github.com/piresc/pathclear/internal/pkg/retry"
	"github.com/piresc/pathclear/internal/pkg/server"
	wspkg "github.com/piresc/pathclear/internal/pkg/websocket"
	"github.com/piresc/pathclear/services/emergency/gateway"
	gatewaynats "github.com/piresc/pathclear/services/emergency/gateway/nats"
	gatewaynsq "github.com/piresc/pathclear/services/emergency/gateway/nsq"
	"github.com/piresc/pathclear/services/emergency/handler"
	httpHandler "github.com/piresc/pathclear/services/emergency/handler/http"
	natsHandler "github.com/piresc/pathclear/services/emergency/handler/nats"
	wsHandler "github.com/piresc/pathclear/services/emergency/handler/websocket"
	episodeRepository "github.com/piresc/pathclear/services/emergency/repository"
	emergencyUsecase "github.com/piresc/pathclear/services/emergency/usecase"
	locationHandler "github.com/piresc/pathclear/services/location/handler/http"
	locationRepository "github.com/piresc/pathclear/services/location/repository"
	locationUsecase "github.com/piresc/pathclear/services/location/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "emergency-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/emergency.env"
	}
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize PostgreSQL for location history
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if err := locationRepository.EnsureHistorySchema(context.Background(), postgresClient.GetDB()); err != nil {
		zapLogger.Fatal("Failed to prepare location history schema", zap.Error(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Initialize NSQ producer
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ producer", zap.Error(err))
	}

	// Location tracking
	proximityCache := locationUsecase.NewProximityCache(configs.Location.ProximityCacheTTL, models.Now)
	locationRepo := locationRepository.NewLocationRepository(redisClient)
	historyRepo := locationRepository.NewHistoryRepository(postgresClient.GetDB())
	locationUC := locationUsecase.NewLocationUC(configs, locationRepo, historyRepo, proximityCache)

	// Gateways
	manager := wspkg.NewManager(configs.JWT)
	pushGW := gatewaynats.NewPushGateway(natsClient, circuitbreaker.New(circuitbreaker.DefaultConfig("push-service")))
	loyaltyGW := gatewaynsq.NewLoyaltyGateway(nsqProducer, retry.DefaultConfig())
	emergencyGW := gateway.NewEmergencyGW(manager, pushGW, loyaltyGW)

	// Emergency coordination
	episodeRepo := episodeRepository.NewEpisodeRepository(redisClient, configs.Emergency.EpisodeTTL)
	emergencyUC := emergencyUsecase.NewEmergencyUC(configs, episodeRepo, locationUC, emergencyGW)

	// Handlers
	wsManager := wsHandler.NewWebSocketManager(emergencyUC, locationUC, manager, configs.Location, nrApp)
	natsConsumer := natsHandler.NewNatsHandler(emergencyUC, locationUC, natsClient, nrApp)
	serviceHandler := handler.NewHandler(
		httpHandler.NewEmergencyHandler(emergencyUC, locationUC),
		locationHandler.NewLocationHandler(locationUC),
		wsManager,
		natsConsumer,
		configs,
	)

	if err := serviceHandler.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(metrics.Middleware())

	// Health and metrics endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthService.AddChecker("postgres", health.CheckerFunc(func(ctx context.Context) error {
		return postgresClient.GetDB().PingContext(ctx)
	}))
	healthService.AddChecker("nats", health.ConnectionChecker("nats", func() bool {
		return natsClient.GetConn().IsConnected()
	}))
	health.RegisterHealthEndpoints(e, appName, healthService)
	e.GET("/metrics", metrics.Handler())

	// Register service routes
	serviceHandler.RegisterRoutes(e, redisClient.Client)

	// Components stop in registration order once the HTTP server is down
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("nats-consumers", func(context.Context) error {
		serviceHandler.StopConsumers()
		return nil
	})
	shutdownManager.Register("award-dispatch", emergencyUC.Drain)
	shutdownManager.Register("nats", func(context.Context) error {
		return natsClient.Drain()
	})
	shutdownManager.Register("nsq", func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownManager.Register("redis", func(context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register("postgres", func(context.Context) error {
		return postgresClient.Close()
	})
	if nrApp != nil {
		shutdownManager.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
}
