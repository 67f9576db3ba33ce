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

	getCalendarHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_calendar"
	getDayStatusHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_day_status"
	getPeriodHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_period"
	getUnitBreakdownHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_unit_breakdown"
	removePrivateEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/remove_private_event"
	resetAllHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/reset_all"
	setCellStatusHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/set_cell_status"
	setPrivateEventHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/set_private_event"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	cellstatusRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/cellstatus"
	kvstoreRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
	overlayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/overlay"
	eventsService "github.com/m04kA/SMC-CalendarService/internal/service/events"
	periodService "github.com/m04kA/SMC-CalendarService/internal/service/period"
	resolverService "github.com/m04kA/SMC-CalendarService/internal/service/resolver"
	rosterService "github.com/m04kA/SMC-CalendarService/internal/service/roster"
	rulesService "github.com/m04kA/SMC-CalendarService/internal/service/rules"
	getCalendarUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar"
	setCellStatusUC "github.com/m04kA/SMC-CalendarService/internal/usecase/set_cell_status"
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

	// Инициализируем key/value хранилище (с метриками или без)
	var kvRepository *kvstoreRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		kvRepository = kvstoreRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		kvRepository = kvstoreRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории поверх key/value хранилища
	cellRepository := cellstatusRepo.NewRepository(kvRepository)
	overlayRepository := overlayRepo.NewRepository(kvRepository)

	// Инициализируем сервисы
	rosterSvc := rosterService.NewService(
		cfg.Calendar.UnitCount,
		cfg.Calendar.UnitTypeLabel,
		cfg.Calendar.RosterScanEnabled,
		cellRepository,
		log,
	)

	statusCache := resolverService.NewCache()
	resolverSvc := resolverService.NewService(
		cellRepository,
		overlayRepository,
		rosterSvc,
		statusCache,
		log,
	)

	periodSvc := periodService.NewService(cfg.Calendar.MaxRangeDays)

	eventsSvc := eventsService.NewService(overlayRepository, statusCache, log)

	// Инициализируем конвейер правил и регистрируем встроенные правила
	ruleRegistry := rulesService.NewRegistry(kvRepository, log)
	if err := ruleRegistry.Register(rulesService.NewPrivateEventRule()); err != nil {
		log.Fatal("Failed to register private event rule: %v", err)
	}
	if err := ruleRegistry.Register(rulesService.NewSpecialPricingRule()); err != nil {
		log.Fatal("Failed to register special pricing rule: %v", err)
	}
	if err := ruleRegistry.LoadState(context.Background()); err != nil {
		log.Warn("Failed to load rule enablement flags, using defaults: %v", err)
	}
	log.Info("Rule pipeline initialized with %d rules", len(ruleRegistry.Rules()))

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		periodSvc,
		resolverSvc,
		ruleRegistry,
		overlayRepository,
		&cfg.Calendar,
		log,
	)

	setCellStatusUseCase := setCellStatusUC.NewUseCase(
		cellRepository,
		rosterSvc,
		txMgr,
		statusCache,
		log,
	)

	// Инициализируем handlers
	getPeriod := getPeriodHandler.NewHandler(periodSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getDayStatus := getDayStatusHandler.NewHandler(resolverSvc, log)
	getUnitBreakdown := getUnitBreakdownHandler.NewHandler(resolverSvc, log)
	setCellStatus := setCellStatusHandler.NewHandler(setCellStatusUseCase, log)
	setPrivateEvent := setPrivateEventHandler.NewHandler(eventsSvc, log)
	removePrivateEvent := removePrivateEventHandler.NewHandler(eventsSvc, log)
	resetAll := resetAllHandler.NewHandler(setCellStatusUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Окно дат без статусов
	api.HandleFunc("/periods", getPeriod.Handle).Methods(http.MethodGet)

	// Календарь: окно дат со статусами, правилами и ценами
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Статус дня (или юнита на день)
	api.HandleFunc("/days/{date}/status", getDayStatus.Handle).Methods(http.MethodGet)

	// Распределение статусов по юнитам на день
	api.HandleFunc("/days/{date}/breakdown", getUnitBreakdown.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Установка статуса ячейки (один юнит или все)
	protected.HandleFunc("/cells/status", setCellStatus.Handle).Methods(http.MethodPut)

	// Сброс всех override статусов
	protected.HandleFunc("/cells/reset", resetAll.Handle).Methods(http.MethodPost)

	// Аннотации дат: приватные события и специальное ценообразование
	protected.HandleFunc("/days/{date}/event", setPrivateEvent.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/days/{date}/event", removePrivateEvent.Handle).Methods(http.MethodDelete)

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
