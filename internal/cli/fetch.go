package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-traffic-news/internal/client"
	"github.com/pribylovaa/go-traffic-news/internal/config"
	"github.com/pribylovaa/go-traffic-news/internal/render"
	"github.com/pribylovaa/go-traffic-news/internal/service"
	logctx "github.com/pribylovaa/go-traffic-news/pkg/log"
)

// runFetch — корневая команда: все сообщения для земли, по мере прихода страниц.
func runFetch(cmd *cobra.Command, g *globalOptions, rf *requestFlags, ff *fetchFlags, arg string) error {
	req, err := rf.request(arg)
	if err != nil {
		return err
	}

	mode, err := render.ParseColorMode(g.color)
	if err != nil {
		return usageError(err, "")
	}

	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if err := ff.apply(cmd.Flags(), cfg); err != nil {
		return err
	}

	log := setupLogger(cfg.Env, cmd.ErrOrStderr(), fetchLevel(g.verbose))
	ctx := logctx.Into(cmd.Context(), log)

	svc := service.New(newClient(cfg, nil), cfg.Pagination)
	p := render.NewPrinter(cmd.OutOrStdout(), render.Options{ColorMode: mode, JSON: ff.json})

	for n, err := range svc.News(ctx, req) {
		if err != nil {
			return err
		}
		if err := p.Print(n); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if p.Count() == 0 && !ff.json {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Keine Meldungen.")
	}

	log.Debug("fetch_done",
		slog.String("state", req.FederalState),
		slog.Int("printed", p.Count()),
	)

	return nil
}

// newClient собирает GraphQL-клиент по секции upstream. obs может быть nil.
func newClient(cfg *config.Config, obs client.Observer) *client.Client {
	return client.New(&http.Client{}, client.Options{
		URL:          cfg.Upstream.URL,
		Timeout:      cfg.Upstream.Timeout,
		UserAgent:    cfg.Upstream.UserAgent,
		MaxBodyBytes: cfg.Upstream.MaxBodyBytes,
		Observer:     obs,
	})
}
