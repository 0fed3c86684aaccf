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

	"github.com/jneves25/barber-service/internal/access"
	commissionHandler "github.com/jneves25/barber-service/internal/api/handlers/commission"
	createBookingHandler "github.com/jneves25/barber-service/internal/api/handlers/create_booking"
	getAppointmentHandler "github.com/jneves25/barber-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/jneves25/barber-service/internal/api/handlers/get_available_slots"
	goalHandler "github.com/jneves25/barber-service/internal/api/handlers/goal"
	listAppointmentsHandler "github.com/jneves25/barber-service/internal/api/handlers/list_appointments"
	tabHandler "github.com/jneves25/barber-service/internal/api/handlers/tab"
	"github.com/jneves25/barber-service/internal/api/middleware"
	"github.com/jneves25/barber-service/internal/config"
	appointmentRepo "github.com/jneves25/barber-service/internal/infra/storage/appointment"
	commissionRepo "github.com/jneves25/barber-service/internal/infra/storage/commission"
	goalRepo "github.com/jneves25/barber-service/internal/infra/storage/goal"
	orderItemsRepo "github.com/jneves25/barber-service/internal/infra/storage/order_items"
	catalogServiceClient "github.com/jneves25/barber-service/internal/integrations/catalogservice"
	appointmentsService "github.com/jneves25/barber-service/internal/service/appointments"
	commissionsService "github.com/jneves25/barber-service/internal/service/commissions"
	goalsService "github.com/jneves25/barber-service/internal/service/goals"
	ordersService "github.com/jneves25/barber-service/internal/service/orders"
	createBookingUC "github.com/jneves25/barber-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/jneves25/barber-service/internal/usecase/get_available_slots"
	"github.com/jneves25/barber-service/pkg/dbmetrics"
	"github.com/jneves25/barber-service/pkg/logger"
	"github.com/jneves25/barber-service/pkg/metrics"
	"github.com/jneves25/barber-service/pkg/txmanager"
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

	log.Info("Starting barber-service...")
	log.Info("Configuration loaded from %s", configPath)

	// Политика прав по ролям
	policy, err := access.NewPolicy(cfg.PermissionTable())
	if err != nil {
		log.Fatal("Failed to build permission policy: %v", err)
	}

	// Метрики (если выключены, сервисы получают nil и ничего не пишут)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обёртка БД пишет метрики запросов; при выключенных метриках работает как прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграции
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	orderItemsRepository := orderItemsRepo.NewRepository(wrappedDB)
	commissionRepository := commissionRepo.NewRepository(wrappedDB)
	goalRepository := goalRepo.NewRepository(wrappedDB)

	schedule := getAvailableSlotsUC.Schedule{
		WorkingHours:   cfg.Schedule.WorkingHours(),
		StepMinutes:    cfg.Schedule.StepMinutes,
		MaxAdvanceDays: cfg.Schedule.MaxAdvanceDays,
	}

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		schedule,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		txMgr,
		schedule,
		log,
	)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	orderSvc := ordersService.NewService(
		appointmentRepository,
		orderItemsRepository,
		catalogClient,
		txMgr,
		metricsCollector,
		log,
	)
	commissionSvc := commissionsService.NewService(
		commissionRepository,
		catalogClient,
		metricsCollector,
		log,
	)
	goalSvc := goalsService.NewService(
		goalRepository,
		orderItemsRepository,
		catalogClient,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	tabs := tabHandler.NewHandler(orderSvc, log)
	commissions := commissionHandler.NewHandler(commissionSvc, log)
	goals := goalHandler.NewHandler(goalSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID, права по X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(policy))

	// --- Записи ---
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// --- Заказ записи ---
	protected.HandleFunc("/appointments/{appointmentId}/open", tabs.Open).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/complete", tabs.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/tab", tabs.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/tab/items", tabs.AddItem).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/tab/items/{itemId}", tabs.AdjustQuantity).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/tab/items/{itemId}", tabs.RemoveItem).Methods(http.MethodDelete)

	// --- Комиссии ---
	protected.HandleFunc("/professionals/{professionalId}/commissions", commissions.Settings).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/commissions/general", commissions.SetGeneral).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", commissions.Resolve).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", commissions.SetRule).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}", commissions.DeleteRule).Methods(http.MethodDelete)
	protected.HandleFunc("/professionals/{professionalId}/commissions/services/{serviceId}/breakdown", commissions.Breakdown).Methods(http.MethodGet)

	// --- Цели ---
	protected.HandleFunc("/goals", goals.Create).Methods(http.MethodPost)
	protected.HandleFunc("/goals/{goalId}", goals.Progress).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/goals", goals.List).Methods(http.MethodGet)

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
