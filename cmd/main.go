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

	cancelBookingHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/create_booking"
	createTravelOptionHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/create_travel_option"
	deleteTravelOptionHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/delete_travel_option"
	getBookingHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/get_booking"
	getTravelOptionHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/get_travel_option"
	getUserBookingsHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/get_user_bookings"
	listTravelOptionsHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/list_travel_options"
	updateTravelOptionHandler "github.com/avlasov-n/TRV-BookingService/internal/api/handlers/update_travel_option"
	"github.com/avlasov-n/TRV-BookingService/internal/api/middleware"
	"github.com/avlasov-n/TRV-BookingService/internal/config"
	bookingRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/booking"
	travelOptionRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	userServiceClient "github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
	bookingsService "github.com/avlasov-n/TRV-BookingService/internal/service/bookings"
	travelOptionsService "github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions"
	cancelBookingUC "github.com/avlasov-n/TRV-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/avlasov-n/TRV-BookingService/internal/usecase/create_booking"
	"github.com/avlasov-n/TRV-BookingService/pkg/dbmetrics"
	"github.com/avlasov-n/TRV-BookingService/pkg/logger"
	"github.com/avlasov-n/TRV-BookingService/pkg/metrics"
	"github.com/avlasov-n/TRV-BookingService/pkg/simpletxmanager"
	"github.com/avlasov-n/TRV-BookingService/pkg/txmanager"
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

	log.Info("Starting TRV-BookingService...")
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

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		travelOptionRepository *travelOptionRepo.Repository
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
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		travelOptionRepository = travelOptionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		travelOptionRepository = travelOptionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userClient,
		log,
	)
	travelOptionSvc := travelOptionsService.NewService(
		travelOptionRepository,
		bookingRepository,
		userClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		travelOptionRepository,
		userClient,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		travelOptionRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listTravelOptions := listTravelOptionsHandler.NewHandler(travelOptionSvc, log)
	getTravelOption := getTravelOptionHandler.NewHandler(travelOptionSvc, log)
	createTravelOption := createTravelOptionHandler.NewHandler(travelOptionSvc, log)
	updateTravelOption := updateTravelOptionHandler.NewHandler(travelOptionSvc, log)
	deleteTravelOption := deleteTravelOptionHandler.NewHandler(travelOptionSvc, log)

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

	// Поиск вариантов поездок с фильтрацией
	api.HandleFunc("/travel-options", listTravelOptions.Handle).Methods(http.MethodGet)

	// Получение варианта поездки по ID
	api.HandleFunc("/travel-options/{travelOptionId}", getTravelOption.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление вариантами поездок (для администраторов) ---
	// Создание варианта поездки
	protected.HandleFunc("/travel-options", createTravelOption.Handle).Methods(http.MethodPost)

	// Обновление варианта поездки
	protected.HandleFunc("/travel-options/{travelOptionId}", updateTravelOption.Handle).Methods(http.MethodPut)

	// Удаление варианта поездки
	protected.HandleFunc("/travel-options/{travelOptionId}", deleteTravelOption.Handle).Methods(http.MethodDelete)

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
