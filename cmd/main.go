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
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	cancelBookingHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/create_booking"
	createRecurringEventHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/create_recurring_event"
	getCourtBookingsHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/get_court_bookings"
	getDayScheduleHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/get_day_schedule"
	listCourtsHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/list_courts"
	refreshCourtsHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/refresh_courts"
	suggestAlternativeHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/suggest_alternative"
	updateBookingHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/update_booking"
	wizardTransitionHandler "github.com/m04kA/SMC-CourtScheduler/internal/api/handlers/wizard_transition"
	"github.com/m04kA/SMC-CourtScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduler/internal/config"
	courtsCache "github.com/m04kA/SMC-CourtScheduler/internal/infra/cache/courts"
	snapshotRepo "github.com/m04kA/SMC-CourtScheduler/internal/infra/storage/snapshot"
	bookingAPIClient "github.com/m04kA/SMC-CourtScheduler/internal/integrations/bookingapi"
	bookingsService "github.com/m04kA/SMC-CourtScheduler/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtScheduler/internal/service/courts"
	createRecurringEventUC "github.com/m04kA/SMC-CourtScheduler/internal/usecase/create_recurring_event"
	getDayScheduleUC "github.com/m04kA/SMC-CourtScheduler/internal/usecase/get_day_schedule"
	submitBookingUC "github.com/m04kA/SMC-CourtScheduler/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-CourtScheduler/internal/wizard"
	"github.com/m04kA/SMC-CourtScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtScheduler/pkg/logger"
	"github.com/m04kA/SMC-CourtScheduler/pkg/metrics"
	"github.com/m04kA/SMC-CourtScheduler/pkg/mq"
)

// EventPublisher публикатор событий бронирований (RabbitMQ или заглушка)
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SCHEDULER_CONFIG"); p != "" {
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

	log.Info("Starting SMC-CourtScheduler...")
	log.Info("Configuration loaded from %s", configPath)

	// Validate уже проверил сетку и часовой пояс
	grid, _ := cfg.Schedule.Grid()
	location, _ := cfg.Schedule.Location()
	log.Info("Slot grid %s-%s step=%dm (%d slots), timezone=%s",
		cfg.Schedule.GridStart, cfg.Schedule.GridEnd, grid.StepMinutes, grid.SlotCount(), location)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		registerer       prometheus.Registerer
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		registerer = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе снимков
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	wrappedDB := dbmetrics.Wrap(db, cfg.Metrics.ServiceName, registerer)
	if registerer != nil {
		registerer.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Driver))
		log.Info("Database metrics collection started")
	}

	snapshots := snapshotRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	if err := snapshots.Migrate(startupCtx); err != nil {
		log.Fatal("Failed to migrate snapshot store: %v", err)
	}

	// Инициализируем клиент API бронирований
	apiClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Booking API client initialized (url=%s timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Кеш кортов (опционально)
	var courtsSvc *courtsService.Service
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		cache := courtsCache.NewCache(redisClient, time.Duration(cfg.Redis.CourtsTTL)*time.Second)
		courtsSvc = courtsService.NewService(apiClient, cache, log)
		log.Info("Courts cache enabled (redis=%s ttl=%ds)", cfg.Redis.Addr, cfg.Redis.CourtsTTL)
	} else {
		courtsSvc = courtsService.NewService(apiClient, nil, log)
		log.Info("Courts cache disabled, courts are fetched from the booking API")
	}

	// Публикация событий (опционально)
	var publisher EventPublisher = mq.NopPublisher{}
	if cfg.Events.Enabled {
		rabbit, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, cfg.Metrics.ServiceName)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		publisher = rabbit
		log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(apiClient, courtsSvc, publisher, log)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		apiClient,
		snapshots,
		metricsCollector,
		grid,
		location,
		log,
	)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		apiClient,
		courtsSvc,
		publisher,
		metricsCollector,
		log,
	)
	createRecurringEventUseCase := createRecurringEventUC.NewUseCase(
		apiClient,
		courtsSvc,
		publisher,
		cfg.Schedule.MaxDescriptionLength,
		log,
	)
	wizardMachine := wizard.NewMachine(cfg.Schedule.MaxDescriptionLength)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, location, log)
	updateBooking := updateBookingHandler.NewHandler(submitBookingUseCase, location, log)
	suggestAlternative := suggestAlternativeHandler.NewHandler(submitBookingUseCase, location, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, location, log)
	getCourtBookings := getCourtBookingsHandler.NewHandler(bookingSvc, location, log)
	listCourts := listCourtsHandler.NewHandler(courtsSvc, log)
	refreshCourts := refreshCourtsHandler.NewHandler(courtsSvc, log)
	createRecurringEvent := createRecurringEventHandler.NewHandler(createRecurringEventUseCase, location, log)
	wizardTransition := wizardTransitionHandler.NewHandler(wizardMachine, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Переход мастера повторяющегося события (чистая функция)
	api.HandleFunc("/recurring-events/wizard", wizardTransition.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Корты ---
	protected.HandleFunc("/clubs/{clubId}/courts", listCourts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clubs/{clubId}/courts/refresh", refreshCourts.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	protected.HandleFunc("/courts/{courtId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/courts/{courtId}/bookings", getCourtBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/courts/{courtId}/alternatives", suggestAlternative.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Повторяющиеся события (администраторы клуба) ---
	protected.HandleFunc("/recurring-events", createRecurringEvent.Handle).Methods(http.MethodPost)

	// Фоновая очистка старых снимков
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go runSnapshotCleanup(cleanupCtx, snapshots, cfg.Database, log)

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
	stopCleanup()

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

// runSnapshotCleanup периодически удаляет снимки старше срока хранения
func runSnapshotCleanup(ctx context.Context, snapshots *snapshotRepo.Repository, cfg config.DatabaseConfig, log *logger.Logger) {
	if cfg.CleanupInterval <= 0 || cfg.SnapshotRetention <= 0 {
		log.Info("Snapshot cleanup disabled")
		return
	}

	ticker := time.NewTicker(time.Duration(cfg.CleanupInterval) * time.Minute)
	defer ticker.Stop()

	retention := time.Duration(cfg.SnapshotRetention) * time.Hour
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := snapshots.DeleteFetchedBefore(ctx, time.Now().Add(-retention))
			if err != nil {
				log.Warn("Snapshot cleanup failed: %v", err)
				continue
			}
			if deleted > 0 {
				log.Info("Snapshot cleanup removed %d snapshots", deleted)
			}
		}
	}
}
