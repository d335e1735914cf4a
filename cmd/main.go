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

	cancelReservationHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/cancel_reservation"
	createBarberHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_barber"
	createReservationHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_available_slots"
	getBarberReservationsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_barber_reservations"
	getClientReservationsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_client_reservations"
	getScheduleHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_schedule"
	searchBarbersHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/search_barbers"
	setDayAvailabilityHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/set_day_availability"
	setSlotBlackoutHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/set_slot_blackout"
	updateScheduleHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/config"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/memory"
	reservationRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/reservation"
	profileServiceClient "github.com/m04kA/SMC-BarbershopService/internal/integrations/profileservice"
	availabilityService "github.com/m04kA/SMC-BarbershopService/internal/service/availability"
	barbersService "github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
	reservationsService "github.com/m04kA/SMC-BarbershopService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	getScheduleUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

// Интерфейсы хранилищ, общие для PostgreSQL и демо-режима в памяти
type barberStorage interface {
	Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error)
	List(ctx context.Context, filter domain.BarberFilter) ([]*domain.Barber, error)
	UpdateSchedule(ctx context.Context, id int64, haircutDurationMinutes int, openTime, closeTime string) error
}

type reservationStorage interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus) error
}

type availabilityStorage interface {
	UpsertDayOverride(ctx context.Context, override *domain.DayAvailability) (*domain.DayAvailability, error)
	GetDayOverride(ctx context.Context, barberID int64, date time.Time) (*domain.DayAvailability, error)
	UpsertSlotBlackout(ctx context.Context, blackout *domain.SlotBlackout) (*domain.SlotBlackout, error)
	ListSlotBlackouts(ctx context.Context, barberID int64, date time.Time) ([]*domain.SlotBlackout, error)
}

type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting SMC-BarbershopService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище: PostgreSQL или демо-режим в памяти
	var (
		barbers      barberStorage
		reservations reservationStorage
		availability availabilityStorage
		txMgr        transactionManager
	)

	if cfg.DemoMode() {
		log.Info("Database host is empty, running in demo mode with in-memory storage")

		store := memory.NewStore()
		barbers = store.Barbers()
		reservations = store.Reservations()
		availability = store.Availability()
		txMgr = memory.NewTxManager()
	} else {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			barbers = barberRepo.NewRepository(wrappedDB)
			reservations = reservationRepo.NewRepository(wrappedDB)
			availability = availabilityRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			barbers = barberRepo.NewRepository(db)
			reservations = reservationRepo.NewRepository(db)
			availability = availabilityRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	// Инициализируем клиент сервиса профилей
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем сервисы
	barberSvc := barbersService.NewService(barbers, profileClient, log)
	reservationSvc := reservationsService.NewService(reservations, barbers, profileClient, log)
	availabilitySvc := availabilityService.NewService(availability, barbers, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(barbers, reservations, txMgr, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(barbers, reservations, availability, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(barbers, reservations, availability, log)

	// Инициализируем handlers
	searchBarbers := searchBarbersHandler.NewHandler(barberSvc, log)
	createBarber := createBarberHandler.NewHandler(barberSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(barberSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	getBarberReservations := getBarberReservationsHandler.NewHandler(reservationSvc, log)
	setDayAvailability := setDayAvailabilityHandler.NewHandler(availabilitySvc, log)
	setSlotBlackout := setSlotBlackoutHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск барберов по имени и локации
	api.HandleFunc("/barbers", searchBarbers.Handle).Methods(http.MethodGet)

	// Полная дневная сетка слотов барбера
	api.HandleFunc("/barbers/{barberId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Свободные слоты барбера на дату
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Барберы ---
	// Создание профиля барбера
	protected.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)

	// Обновление расписания барбера
	protected.HandleFunc("/barbers/{barberId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// Резервации барбера
	protected.HandleFunc("/barbers/{barberId}/reservations", getBarberReservations.Handle).Methods(http.MethodGet)

	// Управление доступностью: весь день и отдельные слоты
	protected.HandleFunc("/barbers/{barberId}/availability", setDayAvailability.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/barbers/{barberId}/blackout-slots", setSlotBlackout.Handle).Methods(http.MethodPatch)

	// --- Резервации ---
	// Создание резервации
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена резервации
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// История резерваций клиента
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)

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
