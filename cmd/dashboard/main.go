package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finboard/finboard/internal/application/actions"
	"github.com/finboard/finboard/internal/application/auth"
	"github.com/finboard/finboard/internal/application/queries"
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/infrastructure/persistence/postgres"
	"github.com/finboard/finboard/internal/infrastructure/viewcache"
	"github.com/finboard/finboard/internal/interfaces/rest/handlers"
	"github.com/finboard/finboard/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting dashboard service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	invoiceRepo := postgres.NewInvoiceRepository(db)
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)

	views := viewcache.NewMemory(cfg.Cache.ViewTTL)

	createAction := actions.NewCreateInvoiceAction(invoiceRepo, views, logger)
	updateAction := actions.NewUpdateInvoiceAction(invoiceRepo, views, logger)
	deleteAction := actions.NewDeleteInvoiceAction(invoiceRepo, views, logger)

	authFlow := auth.NewFlow(userRepo, &auth.BcryptHasher{}, logger)
	tokens := auth.NewTokenIssuer(cfg.Session.Secret, cfg.Session.TTL)

	queryService := queries.NewService(invoiceRepo, customerRepo, views, logger)

	h := handlers.NewHandlers(
		createAction,
		updateAction,
		deleteAction,
		authFlow,
		tokens,
		queryService,
		logger,
	)

	mux := http.NewServeMux()
	guard := middleware.RequireSession(handlers.SessionCookie, tokens, logger)
	h.Routes(mux, guard)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Metrics()(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
