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

	cancelAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/complete_appointment"
	createBookingHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/delete_service"
	describeServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/describe_service"
	getAppointmentHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_business"
	getCalendarHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_calendar"
	getDashboardHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_dashboard"
	listAppointmentsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_services"
	listUpcomingHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_upcoming_appointments"
	updateServiceHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/summarizer"
	agendaService "github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	businessService "github.com/m04kA/SMC-AgendaService/internal/service/business"
	catalogService "github.com/m04kA/SMC-AgendaService/internal/service/catalog"
	"github.com/m04kA/SMC-AgendaService/internal/service/ledger"
	"github.com/m04kA/SMC-AgendaService/internal/service/workinghours"
	createBookingUC "github.com/m04kA/SMC-AgendaService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

// appointmentStorage хранилище записей: журнал и счетчик для каталога
type appointmentStorage interface {
	ledger.AppointmentRepository
	catalogService.AppointmentCounter
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

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from config.toml")

	// defer внутри run (db.Close) отрабатывают до os.Exit
	if err := run(cfg, log); err != nil {
		log.Error("%v", err)
		log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	location, err := cfg.Business.Location()
	if err != nil {
		return fmt.Errorf("invalid business timezone: %w", err)
	}

	// Инициализируем метрики (если включены). Методы *Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var (
		appointments appointmentStorage
		services     catalogService.ServiceRepository
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.Timeout())
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var observer dbmetrics.Observer
		if metricsCollector != nil {
			observer = metricsCollector
			log.Info("Database metrics collection started")
		}
		wrappedDB := dbmetrics.Wrap(db, observer)

		appointments = appointmentRepo.NewRepository(wrappedDB, location)
		services = serviceRepo.NewRepository(wrappedDB)

	default:
		appointments = memory.NewAppointmentStore()
		services = memory.NewServiceStore()
		log.Warn("Using in-memory storage, data is lost on restart")
	}

	// Рабочие часы
	hours, err := cfg.Business.Hours()
	if err != nil {
		return fmt.Errorf("invalid working hours: %w", err)
	}
	calendar, err := workinghours.NewCalendar(hours)
	if err != nil {
		return fmt.Errorf("invalid working hours: %w", err)
	}

	info, err := cfg.Business.Info()
	if err != nil {
		return fmt.Errorf("invalid business config: %w", err)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(services, appointments, cfg.Storage.Timeout(), log)

	seed := make([]catalogService.CreateServiceRequest, 0, len(cfg.Business.Services))
	for _, s := range cfg.Business.Services {
		seed = append(seed, catalogService.CreateServiceRequest{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Description:     s.Description,
			Category:        s.Category,
		})
	}
	if err := catalogSvc.Seed(context.Background(), seed); err != nil {
		return fmt.Errorf("failed to seed service catalog: %w", err)
	}

	appointmentLedger := ledger.New(appointments, catalogSvc, cfg.Storage.Timeout(), log)

	summarizerClient, err := summarizer.NewClient(
		context.Background(),
		cfg.Summarizer.BaseURL,
		cfg.Summarizer.APIKey,
		cfg.Summarizer.Model,
		time.Duration(cfg.Summarizer.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	if err != nil {
		return fmt.Errorf("failed to create summarizer client: %w", err)
	}
	log.Info("Summarizer client initialized (enabled=%t, timeout=%ds)",
		summarizerClient.Enabled(), cfg.Summarizer.Timeout)

	agendaSvc := agendaService.NewService(appointmentLedger, catalogSvc, summarizerClient, location, log)
	businessSvc := businessService.NewService(info, calendar, cfg.Slots.StepMinutes)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		catalogSvc,
		calendar,
		appointmentLedger,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		calendar,
		appointmentLedger,
		cfg.Slots.StepMinutes,
		log,
	)

	// Инициализируем handlers
	getBusiness := getBusinessHandler.NewHandler(businessSvc)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentLedger, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentLedger, location, log)
	listUpcoming := listUpcomingHandler.NewHandler(appointmentLedger, location, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentLedger, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentLedger, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	describeService := describeServiceHandler.NewHandler(agendaSvc, log)
	getDashboard := getDashboardHandler.NewHandler(agendaSvc, log)
	getCalendar := getCalendarHandler.NewHandler(agendaSvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Публичная страница записи ---
	api.HandleFunc("/business", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// --- Записи ---
	// /appointments/upcoming регистрируется раньше /appointments/{appointmentId}
	api.HandleFunc("/appointments/upcoming", listUpcoming.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	api.HandleFunc("/services/describe", describeService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Панель администратора ---
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер. CORS оборачивает весь роутер, чтобы preflight
	// OPTIONS не отсекался сопоставлением методов.
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS()(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
