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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	checkAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_availability"
	checkFleetHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_fleet_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	catalogCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/catalog"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	fleetRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/fleet"
	resourceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/resource"
	vendorServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/vendorservice"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	checkFleetUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
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

	location, err := cfg.Engine.Location()
	if err != nil {
		log.Fatal("Invalid engine timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	// При выключенных метриках коллектор nil, его методы ничего не делают
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

	// Репозитории работают через обертку с метриками или напрямую с *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	resourceRepository := resourceRepo.NewRepository(executor)
	fleetRepository := fleetRepo.NewRepository(executor)

	// Инициализируем клиент каталога вендоров
	vendorClient := vendorServiceClient.NewClient(
		cfg.VendorService.URL,
		time.Duration(cfg.VendorService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VendorService=%s timeout=%ds)",
		cfg.VendorService.URL, cfg.VendorService.Timeout)

	var catalog getAvailableSlotsUC.CatalogClient = vendorClient
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		// Недоступный Redis не мешает старту: кэш сам откатывается на прямые чтения
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis at %s is unreachable, catalog cache will degrade to direct reads: %v", cfg.Cache.Addr, err)
		}

		catalog = catalogCache.New(vendorClient, rdb, cfg.Cache.TTL(), log)
		log.Info("Catalog cache enabled (addr=%s, ttl=%s)", cfg.Cache.Addr, cfg.Cache.TTL())
	}

	// Движок расчета доступности
	engine := availability.NewEngine(location)
	log.Info("Availability engine initialized (timezone=%s)", location)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalog,
		resourceRepository,
		bookingRepository,
		engine,
		metricsCollector,
		cfg.Engine.RequestTimeout(),
		log,
	)

	checkFleetUseCase := checkFleetUC.NewUseCase(
		fleetRepository,
		bookingRepository,
		engine,
		metricsCollector,
		cfg.Engine.RequestTimeout(),
		log,
	)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(getAvailableSlotsUseCase, checkFleetUseCase, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	checkFleet := checkFleetHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metricsCollector.Registry, promhttp.HandlerOpts{})).
			Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := executor.PingContext(ctx); err != nil {
			log.Error("GET /health - Database is unreachable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "база данных недоступна")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Единая точка проверки доступности: тип ответа определяется формой запроса
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// Доступные слоты услуги на дату
	api.HandleFunc("/vendors/{vendorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятость автопарка на диапазон дат
	api.HandleFunc("/vendors/{vendorId}/fleet-availability", checkFleet.Handle).Methods(http.MethodGet)

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
