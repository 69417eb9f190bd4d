package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/courtsplit/internal/auth"
	"github.com/mmynk/courtsplit/internal/config"
	"github.com/mmynk/courtsplit/internal/handler/health"
	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/middleware"
	"github.com/mmynk/courtsplit/internal/persistence"
	"github.com/mmynk/courtsplit/internal/service"
	"github.com/mmynk/courtsplit/internal/storage"
	"github.com/mmynk/courtsplit/internal/storage/backend"
	"github.com/mmynk/courtsplit/pkg/api/apiconnect"
	"github.com/mmynk/courtsplit/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.Setup(stdout, cfg.LogLevel)

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "backend", cfg.StoreBackend, "key", cfg.StoreKey)

	book, err := ledger.Open(ctx, persistence.NewAdapter(store, cfg.StoreKey))
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	var jwtManager *auth.JWTManager
	if cfg.AuthSecret != "" {
		jwtManager, err = auth.NewJWTManager(cfg.AuthSecret, cfg.TokenTTL)
		if err != nil {
			return fmt.Errorf("configuring auth: %w", err)
		}
		logger.Info("Device token auth enabled")
	} else {
		logger.Warn("AUTH_SECRET not set, RPCs are unauthenticated")
	}

	handler := newRouter(logger, store, service.NewEventService(book, cfg.Currency), jwtManager)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		// h2c for HTTP/2 without TLS, required for Connect streaming clients
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Connect server starting", "address", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newRouter mounts the Connect service next to the health and metrics
// endpoints. A nil jwtManager leaves RPCs unauthenticated.
func newRouter(logger *slog.Logger, store storage.Store, svc apiconnect.EventServiceHandler, jwtManager *auth.JWTManager) http.Handler {
	var interceptors []connect.Interceptor
	if jwtManager != nil {
		// RequireAuth must run first so the logger sees the device ID.
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
	}
	interceptors = append(interceptors, middleware.LoggingInterceptor())

	path, rpc := apiconnect.NewEventServiceHandler(svc, connect.WithInterceptors(interceptors...))

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(corsMiddleware)

	r.Mount("/healthz", health.NewHandler(logger, map[string]health.Checker{
		"store": health.CheckerFunc(store.Ping),
	}).Routes())
	r.Handle("/metrics", promhttp.Handler())
	r.Handle(path+"*", rpc)
	return r
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
