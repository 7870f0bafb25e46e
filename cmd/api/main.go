package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sployal/fine-back-sub000/internal/pkg/config"
	"github.com/sployal/fine-back-sub000/internal/pkg/database"
	"github.com/sployal/fine-back-sub000/internal/pkg/health"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/media"
	"github.com/sployal/fine-back-sub000/internal/pkg/middleware"
	nsqpkg "github.com/sployal/fine-back-sub000/internal/pkg/nsq"
	"github.com/sployal/fine-back-sub000/internal/pkg/server"
	paymentGateway "github.com/sployal/fine-back-sub000/services/payment/gateway"
	paymentHandler "github.com/sployal/fine-back-sub000/services/payment/handler"
	paymentRepository "github.com/sployal/fine-back-sub000/services/payment/repository"
	paymentUsecase "github.com/sployal/fine-back-sub000/services/payment/usecase"
	photoHandler "github.com/sployal/fine-back-sub000/services/photos/handler"
	photoRepository "github.com/sployal/fine-back-sub000/services/photos/repository"
	photoUsecase "github.com/sployal/fine-back-sub000/services/photos/usecase"
)

func main() {
	appName := "fine-back-api"
	configs := config.InitConfig(".env")

	// Missing data-store or CDN credentials are fatal before anything starts
	if err := config.Validate(configs); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Supabase Postgres
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Redis backs the per-route rate limiter
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Cloudinary
	cloudinaryClient, err := media.NewCloudinaryClient(configs.Cloudinary)
	if err != nil {
		zapLogger.Fatal("Failed to create Cloudinary client", logger.Err(err))
	}

	// NSQ producer for payment lifecycle events; publishing is optional
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, payment events disabled", logger.Err(err))
			producer = nil
		} else {
			defer producer.Stop()
		}
	}

	// Repositories
	paymentRepo := paymentRepository.NewPaymentRepository(configs, postgresClient.GetDB())
	photoRepo := photoRepository.NewPhotoRepository(configs, postgresClient.GetDB())

	// Gateways
	paymentGW := paymentGateway.NewPaymentGW(configs, producer, zapLogger)

	// UseCases
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, paymentGW, zapLogger)
	photoUC := photoUsecase.NewPhotoUC(configs, photoRepo, cloudinaryClient, zapLogger)

	// Handlers
	payHandler := paymentHandler.NewPaymentHandler(paymentUC, zapLogger)
	postHandler := photoHandler.NewPhotoHandler(photoUC, zapLogger)

	// Router
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestID())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	payHandler.RegisterRoutes(e, configs, redisClient.GetClient())
	postHandler.RegisterRoutes(e, configs)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
