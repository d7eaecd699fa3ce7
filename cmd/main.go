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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	createScheduleHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_schedule"
	createStylistHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_stylist"
	exportBoardHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/export_board"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getBoardHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_board"
	getDailyAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_daily_appointments"
	healthHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/health"
	linkStylistAccountHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/link_stylist_account"
	listStylistsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_stylists"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/cache/availability"
	accountRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/account"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	stylistRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/stylist"
	accountsService "github.com/m04kA/SMC-SalonBooking/internal/service/accounts"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	stylistsService "github.com/m04kA/SMC-SalonBooking/internal/service/stylists"
	createAppointmentUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
	createScheduleUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_schedule"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	linkStylistAccountUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/link_stylist_account"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/password"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// recoveryLogger адаптер логгера для gorilla RecoveryHandler
type recoveryLogger struct {
	log *logger.Logger
}

func (r recoveryLogger) Println(v ...interface{}) {
	r.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Failed to load salon timezone: %v", err)
	}
	storeTimeout := cfg.Database.QueryTimeoutDuration()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbRecorder = metricsCollector
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

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш доступности (выключен без redis.address)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш необязателен: ошибки чтения откатываются к БД
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Availability cache enabled (redis=%s, ttl=%s)", cfg.Redis.Address, cfg.Redis.CacheTTLDuration())
		}
		cancelPing()
	}
	availabilityCache := availability.NewCache(redisClient, cfg.Redis.CacheTTLDuration())

	// Инициализируем репозитории
	stylistRepository := stylistRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	accountRepository := accountRepo.NewRepository(wrappedDB)

	hasher := password.NewBcryptHasher(password.DefaultCost)

	// Инициализируем сервисы
	stylistSvc := stylistsService.NewService(stylistRepository, storeTimeout, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, scheduleRepository, txMgr, location, storeTimeout, log)
	accountSvc := accountsService.NewService(accountRepository, hasher, storeTimeout, log)

	if cfg.Auth.AdminEmail != "" {
		created, err := accountSvc.EnsureAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			log.Fatal("Failed to bootstrap admin account: %v", err)
		}
		if created {
			log.Info("Admin account %s created", cfg.Auth.AdminEmail)
		}
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		availabilityCache,
		metricsCollector,
		location,
		storeTimeout,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		txMgr,
		availabilityCache,
		metricsCollector,
		location,
		storeTimeout,
		log,
	)
	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		availabilityCache,
		location,
		storeTimeout,
		log,
	)
	linkStylistAccountUseCase := linkStylistAccountUC.NewUseCase(
		stylistRepository,
		accountRepository,
		hasher,
		txMgr,
		storeTimeout,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, location, log)
	createStylist := createStylistHandler.NewHandler(stylistSvc, log)
	listStylists := listStylistsHandler.NewHandler(stylistSvc, log)
	linkStylistAccount := linkStylistAccountHandler.NewHandler(linkStylistAccountUseCase, log)
	getDailyAppointments := getDailyAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getBoard := getBoardHandler.NewHandler(appointmentSvc, log)
	exportBoard := exportBoardHandler.NewHandler(appointmentSvc, log)
	health := healthHandler.NewHandler(map[string]healthHandler.Check{
		"postgres": wrappedDB.PingContext,
		"redis":    availabilityCache.Ping,
	}, log)

	bookingLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.GatewayHeadersTrusted(), log))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи (с ограничением частоты по IP)
	api.Handle("/appointments",
		bookingLimiter.Middleware(log)(http.HandlerFunc(createAppointment.Handle))).Methods(http.MethodPost)

	// ============================================================
	// BACK-OFFICE ROUTES (ADMIN, STAFF видит только своего мастера)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff))
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Мастера ---
	admin.Handle("/stylists", adminOnly(http.HandlerFunc(createStylist.Handle))).Methods(http.MethodPost)
	admin.HandleFunc("/stylists", listStylists.Handle).Methods(http.MethodGet)
	admin.Handle("/stylists/{stylistId}/account",
		adminOnly(http.HandlerFunc(linkStylistAccount.Handle))).Methods(http.MethodPost)

	// --- Расписание ---
	admin.Handle("/schedules", adminOnly(http.HandlerFunc(createSchedule.Handle))).Methods(http.MethodPost)

	// --- Записи ---
	admin.HandleFunc("/appointments", getDailyAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// --- Доска записей ---
	admin.HandleFunc("/board", getBoard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/board/export", exportBoard.Handle).Methods(http.MethodGet)

	// Обёртки: реальный IP из X-Forwarded-For, CORS, восстановление после паники, access log
	corsHeaders := []string{"Authorization", "Content-Type"}
	if cfg.Auth.GatewayHeadersTrusted() {
		corsHeaders = append(corsHeaders, middleware.IdentityHeaders...)
	}
	var handler http.Handler = r
	handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders(corsHeaders),
	)(handler)
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
		gorillaHandlers.PrintRecoveryStack(true),
	)(handler)
	handler = gorillaHandlers.ProxyHeaders(handler)
	handler = gorillaHandlers.CombinedLoggingHandler(log.Writer(), handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
