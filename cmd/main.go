package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/horizon-develop/tempo-salon/internal/api/handlers"
	getAvailableDatesHandler "github.com/horizon-develop/tempo-salon/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/horizon-develop/tempo-salon/internal/api/handlers/get_available_slots"
	healthHandler "github.com/horizon-develop/tempo-salon/internal/api/handlers/health"
	"github.com/horizon-develop/tempo-salon/internal/api/middleware"
	"github.com/horizon-develop/tempo-salon/internal/config"
	"github.com/horizon-develop/tempo-salon/internal/infra/migrations"
	bookingRepo "github.com/horizon-develop/tempo-salon/internal/infra/storage/booking"
	calendarRepo "github.com/horizon-develop/tempo-salon/internal/infra/storage/calendar"
	serviceRepo "github.com/horizon-develop/tempo-salon/internal/infra/storage/service"
	getAvailableDatesUC "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/horizon-develop/tempo-salon/internal/usecase/get_available_slots"
	"github.com/horizon-develop/tempo-salon/pkg/clock"
	"github.com/horizon-develop/tempo-salon/pkg/dbmetrics"
	"github.com/horizon-develop/tempo-salon/pkg/logger"
	"github.com/horizon-develop/tempo-salon/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting tempo-salon availability service...")
	log.Info("Configuration loaded from %s (timezone=%s, slot_step=%dm)",
		configPath, cfg.Availability.Timezone, cfg.Availability.SlotStepMinutes)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	var availabilityMetrics getAvailableSlotsUC.MetricsRecorder

	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		availabilityMetrics = metricsCollector
		log.Info("Database metrics collection started")
	}

	serviceRepository := serviceRepo.NewRepository(executor)
	calendarRepository := calendarRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)

	// Референсные часы салона
	salonClock := clock.New(cfg.Location())

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		calendarRepository,
		bookingRepository,
		salonClock,
		cfg.Availability.SlotStepMinutes,
		availabilityMetrics,
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		func(calendar getAvailableDatesUC.CalendarRepository) getAvailableDatesUC.SlotsResolver {
			return getAvailableSlotsUseCase.WithCalendar(calendar)
		},
		calendarRepository,
		salonClock,
		cfg.Availability.DateRangeConcurrency,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, salonClock.Location(), log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Даты с доступными слотами (календарь записи)
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

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
