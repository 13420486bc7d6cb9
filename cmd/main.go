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

	cancelBookingRequestHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/cancel_booking_request"
	confirmBookingRequestHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/confirm_booking_request"
	getAvailableSlotsHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_available_slots"
	getBookingRequestHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_booking_request"
	getSalonPolicyHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_salon_policy"
	getSalonRequestsHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_salon_requests"
	getStaffAppointmentsHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_staff_appointments"
	getStaffAvailabilityHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/get_staff_availability"
	rejectBookingRequestHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/reject_booking_request"
	submitBookingRequestHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/submit_booking_request"
	updateAppointmentStatusHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/update_appointment_status"
	updateSalonPolicyHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/update_salon_policy"
	updateStaffAvailabilityHandler "github.com/AbdullahAhmed11/KK-BookingService/internal/api/handlers/update_staff_availability"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/api/middleware"
	"github.com/AbdullahAhmed11/KK-BookingService/internal/config"
	appointmentRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/availability"
	requestRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/bookingrequest"
	policyRepo "github.com/AbdullahAhmed11/KK-BookingService/internal/infra/storage/policy"
	notifyServiceClient "github.com/AbdullahAhmed11/KK-BookingService/internal/integrations/notifyservice"
	policyService "github.com/AbdullahAhmed11/KK-BookingService/internal/service/policy"
	requestsService "github.com/AbdullahAhmed11/KK-BookingService/internal/service/requests"
	scheduleService "github.com/AbdullahAhmed11/KK-BookingService/internal/service/schedule"
	cancelBookingRequestUC "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/cancel_booking_request"
	confirmBookingRequestUC "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/confirm_booking_request"
	getAvailableSlotsUC "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/get_available_slots"
	rejectBookingRequestUC "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/reject_booking_request"
	submitBookingRequestUC "github.com/AbdullahAhmed11/KK-BookingService/internal/usecase/submit_booking_request"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/dbmetrics"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/logger"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/metrics"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/simpletxmanager"
	"github.com/AbdullahAhmed11/KK-BookingService/pkg/txmanager"
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

	log.Info("Starting KK-BookingService...")
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

	// Инициализируем клиента уведомлений
	type NotifyClient interface {
		SendEventWithGracefulDegradation(ctx context.Context, event *notifyServiceClient.BookingEvent) error
	}
	var notifyClient NotifyClient

	if cfg.NotifyService.Enabled {
		notifyClient = notifyServiceClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)
	} else {
		notifyClient = notifyServiceClient.NewNopClient(log)
		log.Info("NotifyService disabled, lifecycle events will only be logged")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		requestRepository      *requestRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		policyRepository       *policyRepo.Repository
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
		requestRepository = requestRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		requestRepository = requestRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	requestsSvc := requestsService.NewService(requestRepository, log)
	scheduleSvc := scheduleService.NewService(appointmentRepository, availabilityRepository, log)
	policySvc := policyService.NewService(policyRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		policyRepository,
		log,
	)

	submitBookingRequestUseCase := submitBookingRequestUC.NewUseCase(
		requestRepository,
		appointmentRepository,
		availabilityRepository,
		policyRepository,
		notifyClient,
		txMgr,
		log,
	)

	confirmBookingRequestUseCase := confirmBookingRequestUC.NewUseCase(
		requestRepository,
		appointmentRepository,
		policyRepository,
		notifyClient,
		txMgr,
		log,
	)

	rejectBookingRequestUseCase := rejectBookingRequestUC.NewUseCase(
		requestRepository,
		notifyClient,
		txMgr,
		log,
	)

	cancelBookingRequestUseCase := cancelBookingRequestUC.NewUseCase(
		requestRepository,
		appointmentRepository,
		policyRepository,
		notifyClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitBookingRequest := submitBookingRequestHandler.NewHandler(submitBookingRequestUseCase, log)
	confirmBookingRequest := confirmBookingRequestHandler.NewHandler(confirmBookingRequestUseCase, log)
	rejectBookingRequest := rejectBookingRequestHandler.NewHandler(rejectBookingRequestUseCase, log)
	cancelBookingRequest := cancelBookingRequestHandler.NewHandler(cancelBookingRequestUseCase, log)
	getBookingRequest := getBookingRequestHandler.NewHandler(requestsSvc, log)
	getSalonRequests := getSalonRequestsHandler.NewHandler(requestsSvc, log)
	getSalonPolicy := getSalonPolicyHandler.NewHandler(policySvc, log)
	updateSalonPolicy := updateSalonPolicyHandler.NewHandler(policySvc, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(scheduleSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(scheduleSvc, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(scheduleSvc, log)
	updateStaffAvailability := updateStaffAvailabilityHandler.NewHandler(scheduleSvc, log)

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

	// Получение доступных слотов мастера
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение политики бронирования салона
	api.HandleFunc("/salons/{salonId}/policy", getSalonPolicy.Handle).Methods(http.MethodGet)

	// Подача заявки на бронирование: гость передаёт контакты в теле,
	// авторизованный клиент опознаётся по X-User-ID
	api.Handle("/booking-requests",
		middleware.OptionalAuth(http.HandlerFunc(submitBookingRequest.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки на бронирование ---
	// Получение заявки по ID
	protected.HandleFunc("/booking-requests/{requestId}", getBookingRequest.Handle).Methods(http.MethodGet)

	// Подтверждение заявки персоналом
	protected.HandleFunc("/booking-requests/{requestId}/confirm",
		confirmBookingRequest.Handle).Methods(http.MethodPost)

	// Отклонение заявки персоналом
	protected.HandleFunc("/booking-requests/{requestId}/reject",
		rejectBookingRequest.Handle).Methods(http.MethodPost)

	// Отмена заявки
	protected.HandleFunc("/booking-requests/{requestId}/cancel",
		cancelBookingRequest.Handle).Methods(http.MethodPost)

	// Очередь заявок салона
	protected.HandleFunc("/salons/{salonId}/booking-requests",
		getSalonRequests.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для персонала) ---
	// Обновление политики бронирования
	protected.HandleFunc("/salons/{salonId}/policy", updateSalonPolicy.Handle).Methods(http.MethodPut)

	// --- Расписание мастеров ---
	// Записи мастера на дату
	protected.HandleFunc("/staff/{staffId}/appointments",
		getStaffAppointments.Handle).Methods(http.MethodGet)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Недельный шаблон доступности мастера
	protected.HandleFunc("/staff/{staffId}/availability",
		getStaffAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/availability",
		updateStaffAvailability.Handle).Methods(http.MethodPut)

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
