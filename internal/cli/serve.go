package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-traffic-news/internal/config"
	"github.com/pribylovaa/go-traffic-news/internal/metrics"
	"github.com/pribylovaa/go-traffic-news/internal/service"
	gwhttp "github.com/pribylovaa/go-traffic-news/internal/transport/http"
	"github.com/pribylovaa/go-traffic-news/internal/transport/http/middleware"
	logctx "github.com/pribylovaa/go-traffic-news/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd — HTTP-поверхность над тем же драйвером пагинации.
func newServeCmd(g *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve traffic news over HTTP",
		Long: `Start an HTTP server with the routes:
  GET /healthz
  GET /states
  GET /news/{state}?country=&street=&construction_sites=&traffic_news=&page=
  GET /metrics

API routes are mounted under http.base_path (HTTP_BASE_PATH) when it is set;
/metrics always stays at the root.

The server stops gracefully on SIGINT/SIGTERM.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, g, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address host:port (default from config http.host/http.port)")

	return cmd
}

func runServe(cmd *cobra.Command, g *globalOptions, addr string) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	var level slog.Leveler
	if g.verbose {
		level = slog.LevelDebug
	}
	log := setupLogger(cfg.Env, cmd.ErrOrStderr(), level)
	log.Info("starting traffic-news server", "env", cfg.Env)

	ctx := cmd.Context()
	mux := newServeHandler(cfg, log)

	if addr == "" {
		addr = cfg.HTTP.Addr()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return logctx.Into(context.WithoutCancel(ctx), log)
		},
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", addr), slog.String("err", err.Error()))
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	log.Info("http_listen_start", slog.String("addr", ln.Addr().String()))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		if serveErr != nil {
			log.Error("http_serve_failed", slog.String("err", serveErr.Error()))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = srv.Close()
	}

	log.Info("server_stopped")

	if serveErr != nil {
		return fmt.Errorf("serve: %w", serveErr)
	}
	return nil
}

// newServeHandler собирает API-роутер (под http.base_path) и /metrics на отдельном реестре.
func newServeHandler(cfg *config.Config, log *slog.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	svc := service.New(newClient(cfg, m), cfg.Pagination)
	apiHandler := gwhttp.NewRouter(svc, gwhttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
		Metrics:  m,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", middleware.Chain(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		middleware.Recover(),
		middleware.RequestID(),
	))
	mux.Handle("/", apiHandler)

	return mux
}
