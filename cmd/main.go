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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	createBookingHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/create_quote"
	getAvailabilityHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/get_catalog"
	listBookingsHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/update_booking_status"
	updatePaymentStatusHandler "github.com/m04kA/VenueBookingService/internal/api/handlers/update_payment_status"
	"github.com/m04kA/VenueBookingService/internal/api/middleware"
	"github.com/m04kA/VenueBookingService/internal/config"
	"github.com/m04kA/VenueBookingService/internal/infra/cache/bookeddates"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VenueBookingService/internal/integrations/notifier"
	"github.com/m04kA/VenueBookingService/internal/rules/catalog"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
	bookingsService "github.com/m04kA/VenueBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/VenueBookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
	getBlockedDatesUC "github.com/m04kA/VenueBookingService/internal/usecase/get_blocked_dates"
	getQuoteUC "github.com/m04kA/VenueBookingService/internal/usecase/get_quote"
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/VenueBookingService/pkg/logger"
	"github.com/m04kA/VenueBookingService/pkg/metrics"
	"github.com/m04kA/VenueBookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p, ok := os.LookupEnv("CONFIG_PATH"); ok && p != "" {
		configPath = p
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

	log.Info("Starting VenueBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopBackgroundCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.New(db)
	}

	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Тарифы: файл из конфига или встроенные
	var rates *catalog.Catalog
	if cfg.Catalog.RatesFile != "" {
		rates, err = catalog.LoadFile(cfg.Catalog.RatesFile)
		if err != nil {
			log.Fatal("Failed to load rates file %s: %v", cfg.Catalog.RatesFile, err)
		}
		log.Info("Rate catalog loaded from %s", cfg.Catalog.RatesFile)
	} else {
		rates = catalog.Default()
		log.Info("Using built-in rate catalog")
	}

	selectionValidator := validator.New(rates.IsLive)
	calculator := quote.NewCalculator(rates)

	// Кеш занятых дат (опционально). Выключенный кеш передаём как nil интерфейс.
	var (
		createCache   createBookingUC.BookedDatesCache
		calendarCache getBlockedDatesUC.BookedDatesCache
		adminCache    bookingsService.BookedDatesCache
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// без кеша сервис работает, только медленнее
			log.Warn("Redis is unavailable at %s, continuing anyway: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		cache := bookeddates.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		createCache, calendarCache, adminCache = cache, cache, cache
		log.Info("Booked dates cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Webhook уведомлений (опционально)
	var bookingNotifier createBookingUC.Notifier
	notifyTimeout := time.Duration(cfg.Notifier.Timeout) * time.Second
	if cfg.Notifier.Enabled {
		bookingNotifier = notifier.NewClient(cfg.Notifier.URL, notifyTimeout, log.With("notifier"))
		log.Info("Booking notifier enabled (timeout=%ds)", cfg.Notifier.Timeout)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		adminCache,
		txMgr,
		metricsCollector,
		log,
	)
	catalogSvc := catalogService.NewService(rates, location, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		selectionValidator,
		calculator,
		createCache,
		bookingNotifier,
		notifyTimeout,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(
		selectionValidator,
		calculator,
		metricsCollector,
		location,
		log,
	)
	getBlockedDatesUseCase := getBlockedDatesUC.NewUseCase(
		bookingRepository,
		calendarCache,
		rates.IsLive,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createQuote := createQuoteHandler.NewHandler(getQuoteUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getBlockedDatesUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(bookingSvc, log)

	adminAuth := middleware.NewAdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log.With("auth"))
	trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}
	submitLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.Window)*time.Second,
		log.With("ratelimit"),
		middleware.WithTrustedProxies(trustedProxies),
		middleware.WithGlobalLimit(cfg.RateLimit.GlobalRPS, cfg.RateLimit.GlobalBurst),
	)
	go submitLimiter.Run(time.Minute, stopBackgroundCh)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Подача заявки ограничена по IP
	submit := api.PathPrefix("/bookings").Subrouter()
	submit.Use(submitLimiter.Middleware)
	submit.HandleFunc("", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/payment-status", updatePaymentStatus.Handle).Methods(http.MethodPatch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уведомлений по уже принятым заявкам
	createBookingUseCase.Wait()

	// Останавливаем фоновые задачи (сбор метрик пула, очистка лимитера)
	close(stopBackgroundCh)

	log.Info("Server stopped gracefully")
}
