package main

import (
	"context"
	"fmt"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"
	"healthlinker-service/internal/app/delivery/http/routers"
	"healthlinker-service/internal/app/drivers/database"
	"healthlinker-service/internal/app/drivers/logger"
	"healthlinker-service/internal/app/drivers/messaging"
	"healthlinker-service/internal/app/drivers/storage"
	"healthlinker-service/internal/app/services/core/appointments"
	"healthlinker-service/internal/app/services/core/doctors"
	"healthlinker-service/internal/app/services/core/slot"
	"healthlinker-service/internal/app/services/core/users"
	"healthlinker-service/internal/app/services/shared/googleauth"
	"healthlinker-service/internal/app/services/shared/jwtmanager"
	"healthlinker-service/internal/app/services/shared/locker"
	"healthlinker-service/internal/app/services/shared/notification"
	"healthlinker-service/internal/app/services/shared/ratelimiter"
	redisRepository "healthlinker-service/internal/app/services/shared/redis"
	minioStorage "healthlinker-service/internal/app/services/shared/storage"
	"healthlinker-service/internal/app/services/shared/transactor"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redis := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minio := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB, driverConfig.MongoDB.DbName); err != nil {
		log.Fatal("Error creating mongo indexes", zap.Error(err))
	}
	cancelIndex()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redis,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minio,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepo, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepo, log)
	mongoTransactor := transactor.NewMongoTransactor(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.UseTransactions)
	googleVerifier := googleauth.NewGoogleVerifier(bootstrap.InternalConfig, log)

	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, log)
	if err != nil {
		return err
	}

	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	var eventPublisher contracts.AppointmentEventPublisher = notification.NewLogPublisher(log)
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, err := notification.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AppointmentQueue, log)
		if err != nil {
			return err
		}
		eventPublisher = rabbitPublisher
		bootstrap.EventPublisherClose = rabbitPublisher.Close
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	slotMongoRepository := slot.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	userUsecase := users.NewUserUsecase(userMongoRepository, tokenManager, googleVerifier, resourceLimiter, bootstrap.InternalConfig, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, objectStorage, bootstrap.InternalConfig, log)
	slotUsecase := slot.NewSlotUsecase(doctorMongoRepository, slotMongoRepository, lockerService, bootstrap.InternalConfig, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		slotMongoRepository,
		doctorMongoRepository,
		mongoTransactor,
		eventPublisher,
		log,
	)

	// Worker
	if bootstrap.InternalConfig.SlotWorker.Enabled {
		worker := slot.NewWorker(log, bootstrap.InternalConfig, lockerService, doctorMongoRepository, slotUsecase, appointmentUsecase)
		worker.Start(context.Background())
		bootstrap.SlotWorkerStop = worker.Stop
	}

	// Controllers
	healthChecks := map[string]controllers.HealthCheck{
		"mongodb": func(ctx context.Context) error {
			return bootstrap.MongoDB.Ping(ctx, readpref.Primary())
		},
		"redis": redisRepo.Ping,
	}

	ctrls := &routers.Controllers{
		User:        controllers.NewUserController(log, userUsecase),
		Doctor:      controllers.NewDoctorController(log, doctorUsecase, slotUsecase, bootstrap.InternalConfig),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase),
		Health:      controllers.NewHealthController(log, healthChecks),
	}

	mw := middlewares.NewMiddlewares(log, tokenManager, bootstrap.InternalConfig)
	routers.SetupRoutes(bootstrap.Router, log, bootstrap.InternalConfig, mw, ctrls)
	return nil
}
