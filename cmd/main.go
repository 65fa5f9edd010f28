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

	cancelReservationHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/get_reservation"
	getRoomReservationsHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/get_room_reservations"
	getUserReservationsHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/get_user_reservations"
	listRoomsHandler "github.com/m04kA/SMC-RoomReservationService/internal/api/handlers/list_rooms"
	"github.com/m04kA/SMC-RoomReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomReservationService/internal/config"
	"github.com/m04kA/SMC-RoomReservationService/internal/infra/queue"
	reservationRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/reservation"
	roomDirectoryClient "github.com/m04kA/SMC-RoomReservationService/internal/integrations/roomdirectory"
	reservationsService "github.com/m04kA/SMC-RoomReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-RoomReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-RoomReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-RoomReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomReservationService/pkg/logger"
	"github.com/m04kA/SMC-RoomReservationService/pkg/metrics"
	"github.com/m04kA/SMC-RoomReservationService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-RoomReservationService...")
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

	// Инициализируем клиента справочника помещений
	roomClient := roomDirectoryClient.NewClient(
		cfg.RoomService.URL,
		time.Duration(cfg.RoomService.Timeout)*time.Second,
		log,
	)
	log.Info("Room directory client initialized (RoomService=%s timeout=%ds)",
		cfg.RoomService.URL, cfg.RoomService.Timeout)

	// Кэширующая обёртка поверх справочника (если включен Redis)
	type RoomDirectory interface {
		GetRoom(ctx context.Context, roomID string) (*roomDirectoryClient.Room, error)
		ListRooms(ctx context.Context) ([]*roomDirectoryClient.Room, error)
	}
	var roomDirectory RoomDirectory = roomClient

	if cfg.Redis.Enabled {
		rdb, err := roomDirectoryClient.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		roomDirectory = roomDirectoryClient.NewCachedClient(
			roomClient,
			rdb,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		log.Info("Room directory cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Публикация событий бронирований (если включен брокер)
	type EventPublisher interface {
		PublishReservationCreated(ctx context.Context, event queue.ReservationCreatedEvent) error
		PublishReservationCancelled(ctx context.Context, event queue.ReservationCancelledEvent) error
	}
	var publisher EventPublisher = queue.NopPublisher{}

	if cfg.Queue.Enabled {
		rabbitPublisher, err := queue.NewPublisher(cfg.Queue.URL, log)
		if err != nil {
			log.Fatal("Failed to connect to message broker: %v", err)
		}
		defer rabbitPublisher.Close()

		publisher = rabbitPublisher
		log.Info("Event publisher connected to message broker")
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var repository *reservationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис бронирований
	reservationsSvc := reservationsService.NewService(
		repository,
		publisher,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		roomDirectory,
		publisher,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repository,
		roomDirectory,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationsSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomDirectory, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Каталог помещений
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Слоты помещения на день с занятостью
	api.HandleFunc("/rooms/{roomId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют заголовки аутентификации)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{id}", cancelReservation.Handle).Methods(http.MethodDelete)

	// Бронирования пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Расписание помещения (для преподавателей) ---
	protected.HandleFunc("/rooms/{roomId}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)

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
