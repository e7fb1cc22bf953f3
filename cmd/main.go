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

	cancelAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_appointment"
	createRuleHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/create_rule"
	deleteRuleHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/delete_rule"
	getAppointmentHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_available_slots"
	getOwnerAppointmentsHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_owner_appointments"
	getOwnerRulesHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_owner_rules"
	updateRuleHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_rule"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	ruleRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/rule"
	ownerServiceClient "github.com/m04kA/SMC-CalendarService/internal/integrations/ownerservice"
	appointmentsService "github.com/m04kA/SMC-CalendarService/internal/service/appointments"
	rulesService "github.com/m04kA/SMC-CalendarService/internal/service/rules"
	createAppointmentUC "github.com/m04kA/SMC-CalendarService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CalendarService/migrations"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	if err := migrations.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем интеграционного клиента
	ownerClient := ownerServiceClient.NewClient(
		cfg.OwnerService.URL,
		time.Duration(cfg.OwnerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (OwnerService=%s timeout=%ds)",
		cfg.OwnerService.URL, cfg.OwnerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		ruleRepository        *ruleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		ownerClient,
		log,
	)
	rulesSvc := rulesService.NewService(
		ruleRepository,
		ownerClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		ruleRepository,
		ownerClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		ruleRepository,
		ownerClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getOwnerAppointments := getOwnerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createRule := createRuleHandler.NewHandler(rulesSvc, log)
	getOwnerRules := getOwnerRulesHandler.NewHandler(rulesSvc, log)
	updateRule := updateRuleHandler.NewHandler(rulesSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(rulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается идентификатор для корреляции логов
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Поиск свободных слотов на дату
	api.HandleFunc("/owners/{ownerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи на приём ---
	// Создание записи
	api.HandleFunc("/owners/{ownerId}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей владельца календаря
	api.HandleFunc("/owners/{ownerId}/appointments", getOwnerAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Правила доступности ---
	api.HandleFunc("/owners/{ownerId}/availability-rules", createRule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/owners/{ownerId}/availability-rules", getOwnerRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/owners/{ownerId}/availability-rules/{ruleId}", updateRule.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/owners/{ownerId}/availability-rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
