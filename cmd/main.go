package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/admin_login"
	createReservationHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/health"
	listReservationsHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/list_reservations"
	updateStatusHandler "github.com/m04kA/wedding-reservation-service/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/wedding-reservation-service/internal/api/router"
	"github.com/m04kA/wedding-reservation-service/internal/config"
	slotCache "github.com/m04kA/wedding-reservation-service/internal/infra/cache/slots"
	accountRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/account"
	reservationRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/reservation"
	"github.com/m04kA/wedding-reservation-service/internal/integrations/eventbus"
	authService "github.com/m04kA/wedding-reservation-service/internal/service/auth"
	reservationsService "github.com/m04kA/wedding-reservation-service/internal/service/reservations"
	createReservationUC "github.com/m04kA/wedding-reservation-service/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/wedding-reservation-service/internal/usecase/get_availability"
	"github.com/m04kA/wedding-reservation-service/pkg/authtoken"
	"github.com/m04kA/wedding-reservation-service/pkg/dbmetrics"
	"github.com/m04kA/wedding-reservation-service/pkg/logger"
	"github.com/m04kA/wedding-reservation-service/pkg/metrics"
	"github.com/m04kA/wedding-reservation-service/pkg/txmanager"
)

type slotCacheBackend interface {
	GetReserved(ctx context.Context, date time.Time) ([]string, bool, error)
	Version(ctx context.Context, date time.Time) (int64, error)
	SetReserved(ctx context.Context, date time.Time, version int64, reserved []string) (bool, error)
	Invalidate(ctx context.Context, date time.Time) error
	Close() error
}

type eventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting wedding-reservation-service...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка БД: без метрик работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	accountRepository := accountRepo.NewRepository(wrappedDB)

	// Кэш занятых слотов
	var cache slotCacheBackend = slotCache.Noop{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, availability is served from the database: %v", cfg.Redis.Addr, err)
		}
		cancelPing()
		cache = slotCache.NewRedisCache(client, cfg.Redis.TTL())
		log.Info("Slot cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}
	defer cache.Close()

	// Издатель событий
	var events eventPublisher = eventbus.Noop{}
	if cfg.Events.Enabled {
		publisher, err := eventbus.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Warn("Event bus unavailable, reservation events are not published: %v", err)
		} else {
			events = publisher
			log.Info("Event bus connected (exchange=%s)", cfg.Events.Exchange)
		}
	}
	defer events.Close()

	// Сервисы
	tokenIssuer := authtoken.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	authSvc := authService.NewService(accountRepository, tokenIssuer, metricsCollector, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		txMgr,
		cache,
		events,
		metricsCollector,
		log,
	)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.SeedAdmin(seedCtx, cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Error("Failed to seed admin account: %v", err)
	}
	cancelSeed()

	// Use cases
	policy := cfg.Slots.Policy()
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		cache,
		events,
		metricsCollector,
		policy,
		log,
	)
	availabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		cache,
		policy,
		log,
	)

	// Настраиваем роутер
	r := router.New(router.Handlers{
		CreateReservation:       createReservationHandler.NewHandler(createReservationUseCase, log),
		ReservedSlots:           getAvailabilityHandler.NewHandler(availabilityUseCase, log),
		AvailableSlots:          getAvailableSlotsHandler.NewHandler(availabilityUseCase, log),
		ListReservations:        listReservationsHandler.NewHandler(reservationsSvc, log),
		UpdateReservationStatus: updateStatusHandler.NewHandler(reservationsSvc, log),
		AdminLogin:              adminLoginHandler.NewHandler(authSvc, log),
		Health:                  healthHandler.NewHandler(db, log),
	}, router.Options{
		Verifier:    authSvc,
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
