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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	computeAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/compute_availability"
	createPropertyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_property"
	deletePropertyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_property"
	exportCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/export_calendar"
	getPropertyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_property"
	getPropertyAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_property_availability"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	updatePropertyHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_property"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	propertyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/property"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/icalfeed"
	"github.com/m04kA/SMC-AvailabilityService/internal/monitor"
	feedsService "github.com/m04kA/SMC-AvailabilityService/internal/service/feeds"
	propertiesService "github.com/m04kA/SMC-AvailabilityService/internal/service/properties"
	computeAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
	exportCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/export_calendar"
	getPropertyAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_property_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/tracing"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	log.Info("Calendar days are computed in timezone %s", location)

	// Трассировка (по умолчанию выключена)
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Metrics.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// Инициализируем метрики (если включены)
	// Интерфейсы остаются nil при выключенных метриках, компоненты подставляют noop
	var (
		metricsCollector *metrics.Metrics
		feedMetrics      icalfeed.MetricsRecorder
		computeMetrics   computeAvailabilityUC.MetricsRecorder
		monitorMetrics   monitor.MetricsRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		feedMetrics = metricsCollector
		computeMetrics = metricsCollector
		monitorMetrics = metricsCollector
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

	// Клиент внешних календарей
	feedClient := icalfeed.NewClient(icalfeed.Config{
		Timeout:      cfg.Feeds.FeedTimeout(),
		MaxBodyBytes: cfg.Feeds.MaxBodyBytes,
		UserAgent:    cfg.Feeds.UserAgent,

		AllowPrivateNetworks: cfg.Feeds.AllowPrivateNetworks,
	}, feedMetrics, log)
	log.Info("Feed client initialized (timeout=%ds per source, max_body=%d bytes)",
		cfg.Feeds.Timeout, cfg.Feeds.MaxBodyBytes)
	if cfg.Feeds.AllowPrivateNetworks {
		log.Warn("Feed client is allowed to reach private network addresses")
	}

	// Репозитории и сервисы
	propertyRepository := propertyRepo.NewRepository(db)
	collector := feedsService.NewCollector(feedClient, location, log)
	propertySvc := propertiesService.NewService(propertyRepository, log)

	// Use cases
	computeAvailabilityUseCase := computeAvailabilityUC.NewUseCase(
		collector,
		location,
		cfg.Availability.MaxDaysAhead,
		computeMetrics,
		log,
	)
	getPropertyAvailabilityUseCase := getPropertyAvailabilityUC.NewUseCase(
		propertyRepository,
		computeAvailabilityUseCase,
		log,
	)
	exportCalendarUseCase := exportCalendarUC.NewUseCase(getPropertyAvailabilityUseCase, log)

	// Монитор ссылок
	var feedMonitor *monitor.Monitor
	if cfg.Monitor.Enabled {
		feedMonitor, err = monitor.New(monitor.Config{
			Schedule:   cfg.Monitor.Schedule,
			BatchSize:  cfg.Monitor.BatchSize,
			RunTimeout: time.Duration(cfg.Monitor.RunTimeout) * time.Second,
			Location:   location,
		}, propertyRepository, collector, monitorMetrics, log)
		if err != nil {
			log.Fatal("Failed to initialize feed monitor: %v", err)
		}
		feedMonitor.Start()
	}

	// Инициализируем handlers
	computeAvailability := computeAvailabilityHandler.NewHandler(computeAvailabilityUseCase, log)
	getPropertyAvailability := getPropertyAvailabilityHandler.NewHandler(getPropertyAvailabilityUseCase, log)
	exportCalendar := exportCalendarHandler.NewHandler(exportCalendarUseCase, log)
	createProperty := createPropertyHandler.NewHandler(propertySvc, log)
	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertySvc, log)
	deleteProperty := deletePropertyHandler.NewHandler(propertySvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт доступности по произвольным ссылкам
	api.HandleFunc("/availability", computeAvailability.Handle).Methods(http.MethodPost)

	// Доступность сохранённого объекта (виджет на карточке)
	api.HandleFunc("/properties/{propertyId}/availability", getPropertyAvailability.Handle).Methods(http.MethodGet)

	// Объединённый календарь занятости
	api.HandleFunc("/properties/{propertyId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/properties/{propertyId}", updateProperty.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/properties/{propertyId}", deleteProperty.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, "http.server"),
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if feedMonitor != nil {
		feedMonitor.Stop(shutdownCtx)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
