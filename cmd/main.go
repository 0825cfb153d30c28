package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/holidaze/booking-gateway/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/holidaze/booking-gateway/internal/api/handlers/get_availability"
	getUserBookingsHandler "github.com/holidaze/booking-gateway/internal/api/handlers/get_user_bookings"
	getVenueHandler "github.com/holidaze/booking-gateway/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/holidaze/booking-gateway/internal/api/handlers/list_venues"
	quoteBookingHandler "github.com/holidaze/booking-gateway/internal/api/handlers/quote_booking"
	"github.com/holidaze/booking-gateway/internal/api/middleware"
	"github.com/holidaze/booking-gateway/internal/config"
	"github.com/holidaze/booking-gateway/internal/domain"
	"github.com/holidaze/booking-gateway/internal/infra/cache/availability"
	holidazeClient "github.com/holidaze/booking-gateway/internal/integrations/holidaze"
	bookingsService "github.com/holidaze/booking-gateway/internal/service/bookings"
	venuesService "github.com/holidaze/booking-gateway/internal/service/venues"
	createBookingUC "github.com/holidaze/booking-gateway/internal/usecase/create_booking"
	getAvailabilityUC "github.com/holidaze/booking-gateway/internal/usecase/get_availability"
	quoteBookingUC "github.com/holidaze/booking-gateway/internal/usecase/quote_booking"
	"github.com/holidaze/booking-gateway/pkg/logger"
	"github.com/holidaze/booking-gateway/pkg/metrics"
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

	log.Info("Starting booking-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент внешнего Holidaze API
	var upstreamMetrics holidazeClient.Metrics
	if metricsCollector != nil {
		upstreamMetrics = metricsCollector
	}
	holidaze := holidazeClient.NewClient(
		cfg.Holidaze.URL,
		time.Duration(cfg.Holidaze.Timeout)*time.Second,
		log,
		upstreamMetrics,
	)
	log.Info("Holidaze client initialized (url=%s, timeout=%ds)", cfg.Holidaze.URL, cfg.Holidaze.Timeout)

	// Инициализируем кеш занятых дней
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = domain.DefaultCacheTTLSeconds * time.Second
	}

	var availabilityCache availability.Store
	switch cfg.Cache.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Cache.RedisAddr, err)
		}
		cancel()
		defer redisClient.Close()

		availabilityCache = availability.NewRedisStore(redisClient, cacheTTL)
		log.Info("Availability cache backend: redis (addr=%s, ttl=%s)", cfg.Cache.RedisAddr, cacheTTL)
	default:
		availabilityCache = availability.NewMemoryStore(cacheTTL)
		log.Info("Availability cache backend: memory (ttl=%s)", cacheTTL)
	}

	// Плата за дополнительных гостей (сверх первого); дефолт подставлен в config.Load
	extraGuestFee := *cfg.Booking.ExtraGuestFee

	// Инициализируем сервисы
	venuesSvc := venuesService.NewService(holidaze, log)
	bookingsSvc := bookingsService.NewService(holidaze, &bookingsService.RealTimeProvider{}, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(holidaze, availabilityCache, extraGuestFee, log)

	var cacheMetrics getAvailabilityUC.CacheMetrics
	if metricsCollector != nil {
		cacheMetrics = metricsCollector
	}
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(holidaze, availabilityCache, cacheMetrics, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(holidaze, extraGuestFee, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	listVenues := listVenuesHandler.NewHandler(venuesSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Каталог venues
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Занятые дни venue (с опциональной проверкой кандидатского диапазона)
	api.HandleFunc("/venues/{venueId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости без создания бронирования
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/profiles/{profileName}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
