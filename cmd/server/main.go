package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/mercadito/retail-api/internal/config"
	employeeHTTP "github.com/mercadito/retail-api/internal/employee/delivery/http"
	employeeRepo "github.com/mercadito/retail-api/internal/employee/repository"
	invoiceHTTP "github.com/mercadito/retail-api/internal/invoice/delivery/http"
	invoiceRepo "github.com/mercadito/retail-api/internal/invoice/repository"
	"github.com/mercadito/retail-api/internal/middleware"
	productHTTP "github.com/mercadito/retail-api/internal/product/delivery/http"
	productRepo "github.com/mercadito/retail-api/internal/product/repository"
	purchaseHTTP "github.com/mercadito/retail-api/internal/purchase/delivery/http"
	purchaseRepo "github.com/mercadito/retail-api/internal/purchase/repository"
	userHTTP "github.com/mercadito/retail-api/internal/user/delivery/http"
	userRepo "github.com/mercadito/retail-api/internal/user/repository"
	"github.com/mercadito/retail-api/pkg/database"
	"github.com/mercadito/retail-api/pkg/logger"
	"github.com/mercadito/retail-api/pkg/tracing"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("failed to shut down tracer")
		}
	}()

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("failed to get database instance")
	}
	defer sqlDB.Close()

	products := productRepo.NewGormProductRepository(db)
	users := userRepo.NewGormUserRepository(db)
	employees := employeeRepo.NewGormEmployeeRepository(db)
	invoices := invoiceRepo.NewGormInvoiceRepository(db)
	purchases := purchaseRepo.NewGormPurchaseRepository(db)

	// Users must migrate before invoices and purchases so the foreign keys
	// have a target table.
	for _, m := range []interface{ AutoMigrate() error }{products, users, employees, invoices, purchases} {
		if err := m.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	metrics := middleware.NewMetrics()

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logging)
	router.Use(metrics.Middleware)

	productHTTP.NewProductHandler(products).RegisterRoutes(router)
	userHTTP.NewUserHandler(users).RegisterRoutes(router)
	employeeHTTP.NewEmployeeHandler(employees).RegisterRoutes(router)
	invoiceHTTP.NewInvoiceHandler(invoices, users).RegisterRoutes(router)
	purchaseHTTP.NewPurchaseHandler(purchases, users).RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("forced shutdown")
	}
}
