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

	addSlotHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/add_slot"
	cancelBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/create_booking"
	createVenueHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/create_venue"
	deleteBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/delete_booking"
	deleteSlotHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/delete_slot"
	getBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_booking"
	getFreeSlotsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_free_slots"
	getPendingBookingsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_pending_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/get_user_bookings"
	listVenuesHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/list_venues"
	registerUserHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/register_user"
	reviewBookingHandler "github.com/m04kA/SMC-GymBookingService/internal/api/handlers/review_booking"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	venueRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/venue"
	bookingsService "github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	usersService "github.com/m04kA/SMC-GymBookingService/internal/service/users"
	venuesService "github.com/m04kA/SMC-GymBookingService/internal/service/venues"
	createBookingUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
	getFreeSlotsUC "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/logger"
	"github.com/m04kA/SMC-GymBookingService/pkg/metrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-GymBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-GymBookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		venueRepository   *venueRepo.Repository
		slotRepository    *slotRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	venueSvc := venuesService.NewService(venueRepository, slotRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		venueRepository,
		slotRepository,
		txMgr,
		log,
	)

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		bookingRepository,
		venueRepository,
		slotRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	reviewBooking := reviewBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getPendingBookings := getPendingBookingsHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	addSlot := addSlotHandler.NewHandler(venueSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(venueSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список площадок с открытыми окнами
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)

	// Свободные интервалы площадки на дату
	api.HandleFunc("/venues/{venueId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Регистрация пользователя
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Очередь бронирований на модерацию
	protected.HandleFunc("/bookings/pending", getPendingBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Решение по бронированию (approve/reject)
	protected.HandleFunc("/bookings/{bookingId}/status", reviewBooking.Handle).Methods(http.MethodPatch)

	// Физическое удаление бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадками ---
	// Создание площадки
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)

	// Добавление открытого окна
	protected.HandleFunc("/venues/{venueId}/slots", addSlot.Handle).Methods(http.MethodPost)

	// Удаление открытого окна
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

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
