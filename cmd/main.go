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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	completeBookingHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/get_booking"
	getScheduleConfigHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/get_schedule_config"
	listBookingsHandler "github.com/m04kA/MC-AppointmentService/internal/api/handlers/list_bookings"
	"github.com/m04kA/MC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/MC-AppointmentService/internal/config"
	"github.com/m04kA/MC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/MC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MC-AppointmentService/internal/scheduling"
	bookingsService "github.com/m04kA/MC-AppointmentService/internal/service/bookings"
	scheduleService "github.com/m04kA/MC-AppointmentService/internal/service/schedule"
	autoScheduleUC "github.com/m04kA/MC-AppointmentService/internal/usecase/auto_schedule"
	createBookingUC "github.com/m04kA/MC-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/MC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/MC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MC-AppointmentService/pkg/logger"
	"github.com/m04kA/MC-AppointmentService/pkg/metrics"
	"github.com/m04kA/MC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/MC-AppointmentService/pkg/txmanager"
	"github.com/m04kA/MC-AppointmentService/pkg/types"
)

func main() {
	// .env необязателен: в контейнере параметры приходят из окружения
	_ = godotenv.Load()

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

	log.Info("Starting MC-AppointmentService...")
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

	// Собираем рабочий календарь кабинета из конфигурации
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}

	weekend, err := cfg.Schedule.Weekdays()
	if err != nil {
		log.Fatal("Failed to parse weekend days: %v", err)
	}

	blocks := make([]scheduling.BlockRange, 0, len(cfg.Schedule.Blocks))
	for _, b := range cfg.Schedule.Blocks {
		start, err := types.NewTimeStringFromString(b.Start)
		if err != nil {
			log.Fatal("Invalid working block start %q: %v", b.Start, err)
		}
		end, err := types.NewTimeStringFromString(b.End)
		if err != nil {
			log.Fatal("Invalid working block end %q: %v", b.End, err)
		}
		blocks = append(blocks, scheduling.BlockRange{Start: start, End: end})
	}

	calendar, err := scheduling.NewCalendar(scheduling.CalendarConfig{
		Location:    location,
		Blocks:      blocks,
		StepMinutes: cfg.Schedule.SlotStepMinutes,
		Weekend:     weekend,
	})
	if err != nil {
		log.Fatal("Failed to build working calendar: %v", err)
	}
	log.Info("Working calendar ready (timezone=%s, blocks=%d, step=%dm, auto horizon=%dd)",
		cfg.Schedule.Timezone, len(blocks), cfg.Schedule.SlotStepMinutes, cfg.Schedule.AutoHorizonDays)

	// Каталог услуг и правила планирования
	catalog := domain.DefaultCatalog()
	durationRules := scheduling.NewDurationRules(catalog)
	conflictChecker := scheduling.NewConflictChecker()

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		location,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		calendar,
		catalog,
		cfg.Schedule.AutoHorizonDays,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		durationRules,
		calendar,
		conflictChecker,
		txMgr,
		log,
	)

	autoScheduleUseCase := autoScheduleUC.NewUseCase(
		bookingRepository,
		catalog,
		durationRules,
		calendar,
		conflictChecker,
		txMgr,
		cfg.Schedule.AutoHorizonDays,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalog,
		durationRules,
		calendar,
		conflictChecker,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, autoScheduleUseCase, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, location, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request id для трассировки запросов в логах
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Записи ---
	// Создание записи: с указанным временем или автоподбор первого окна
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список записей с фильтрами по периоду и статусу
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отметка о выполнении процедуры
	api.HandleFunc("/bookings/{bookingId}/done", completeBooking.Handle).Methods(http.MethodPatch)

	// Отмена записи
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	// Свободные окна на день для услуги
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рабочие интервалы, выходные и каталог услуг
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

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
