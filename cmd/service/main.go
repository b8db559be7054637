package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "pizzaria/internal/app"
	"pizzaria/internal/handlers/rest/api_info_get"
	"pizzaria/internal/handlers/rest/config_get"
	"pizzaria/internal/handlers/rest/criar_pedido_cartao_post"
	"pizzaria/internal/handlers/rest/criar_pedido_post"
	"pizzaria/internal/handlers/rest/healthcheck_head"
	"pizzaria/internal/handlers/rest/pedido_status_put"
	"pizzaria/internal/handlers/rest/pedidos_get"
	"pizzaria/internal/handlers/rest/pedidos_stats_get"
	"pizzaria/internal/handlers/rest/ping_get"
	"pizzaria/internal/handlers/rest/status_pedido_get"
	"pizzaria/internal/handlers/rest/webhook_pagbank_post"
	"pizzaria/internal/pkg/config"
	"pizzaria/internal/pkg/dotenv"
	metrics_system "pizzaria/internal/pkg/metrics"
	"pizzaria/internal/pkg/middlewares/graceful_shutdown"
	"pizzaria/internal/pkg/middlewares/metrics"
	"pizzaria/internal/pkg/middlewares/rate_limiter"
	"pizzaria/internal/pkg/middlewares/timeout"
	"pizzaria/internal/pkg/postgres"
	orderRepo "pizzaria/internal/repository/order"
	"pizzaria/internal/repository/ordermemory"
	ordersService "pizzaria/internal/service/orders"
	"pizzaria/pkg/logger"
	"pizzaria/pkg/logger/zap_adapter"
	"pizzaria/pkg/querier"
	"pizzaria/pkg/token_bucket"
)

const (
	storagePostgres = "PostgreSQL"
	storageMemory   = "Memória RAM"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting pizzaria application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	// The store is picked once at startup and never changes mid-flight: a
	// configured and reachable database wins, anything else falls back to
	// the in-process list.
	repository, storage, cleanup := selectRepository(ctx, log, cfg)
	defer cleanup()

	runLog.Info("order storage selected",
		logger.NewField("storage", storage),
	)

	businessApp, err := application.InitializeApplication(log, repository, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM: it is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, storage),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled at
	// this point.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func selectRepository(ctx context.Context, log logger.Logger, cfg *config.Config) (ordersService.Repository, string, func()) {
	selectLog := log.With()

	if cfg.Database.DSN == "" {
		selectLog.Warn("POSTGRES_DSN not set, orders will not survive restarts")
		return ordermemory.New(), storageMemory, func() {}
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		selectLog.Warn("database unreachable, falling back to in-memory store",
			logger.NewField("error", err),
		)
		return ordermemory.New(), storageMemory, func() {}
	}

	return orderRepo.New(querier.New(pool)), storagePostgres, pool.Close
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	storage string,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/criar-pedido", criar_pedido_post.New(log, app.ServiceCheckout)).Methods("POST")
	router.Handle("/criar-pedido-cartao", criar_pedido_cartao_post.New(log, app.ServiceCheckout)).Methods("POST")
	router.Handle("/status-pedido/{order_id}", status_pedido_get.New(log, app.ServiceCheckout)).Methods("GET")
	router.Handle("/webhook-pagbank", webhook_pagbank_post.New(log, app.ServiceCheckout)).Methods("POST")

	router.Handle("/api", api_info_get.New(log, cfg.PagBank.Environment, storage, storage == storagePostgres)).Methods("GET")
	router.Handle("/api/pedidos", pedidos_get.New(log, app.ServiceOrders, storage)).Methods("GET")
	router.Handle("/api/pedidos/stats", pedidos_stats_get.New(log, app.ServiceOrders)).Methods("GET")
	router.Handle("/api/pedidos/{order_id}/status", pedido_status_put.New(log, app.ServiceOrders)).Methods("PUT")

	router.Handle("/config", config_get.New(log, cfg.PagBank.Environment, storage, storage == storagePostgres)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
