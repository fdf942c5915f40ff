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

	cancelReservationHandler "github.com/kik4/salon-booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/kik4/salon-booking-service/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/kik4/salon-booking-service/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/kik4/salon-booking-service/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/kik4/salon-booking-service/internal/api/handlers/get_user_reservations"
	"github.com/kik4/salon-booking-service/internal/api/middleware"
	"github.com/kik4/salon-booking-service/internal/config"
	reservationRepo "github.com/kik4/salon-booking-service/internal/infra/storage/reservation"
	"github.com/kik4/salon-booking-service/internal/integrations/holidayjp"
	reservationsService "github.com/kik4/salon-booking-service/internal/service/reservations"
	createReservationUC "github.com/kik4/salon-booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/kik4/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/kik4/salon-booking-service/pkg/logger"
	"github.com/kik4/salon-booking-service/pkg/metrics"
	"github.com/kik4/salon-booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon-booking-service...")

	// Metrics (optional)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 10*time.Second, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Holiday calendar client
	holidayClient := holidayjp.NewClient(
		cfg.HolidayService.URL,
		time.Duration(cfg.HolidayService.Timeout)*time.Second,
		log,
	)
	log.Info("Holiday calendar client initialized (URL=%s, timeout=%ds)",
		cfg.HolidayService.URL, cfg.HolidayService.Timeout)

	// Repository and transaction manager
	repository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services and usecases
	reservationsSvc := reservationsService.NewService(repository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, holidayClient, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		repository,
		getAvailableSlotsUseCase,
		txMgr,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes (X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
