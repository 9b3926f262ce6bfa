// cli собирает cobra-команды traffic-news.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-traffic-news/internal/config"
	"github.com/pribylovaa/go-traffic-news/internal/render"
)

// globalOptions — флаги, общие для всех команд.
type globalOptions struct {
	configPath string
	verbose    bool
	color      string
}

// Execute запускает CLI с аргументами args и возвращает код завершения.
// Результат пишется в stdout, логи и ошибки — в stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, g := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	mode, perr := render.ParseColorMode(g.color)
	if perr != nil {
		mode = render.ColorNever
	}
	FormatError(stderr, err, render.ResolveColors(mode))

	return ExitCode(err)
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	g := &globalOptions{}
	rf := &requestFlags{}
	ff := &fetchFlags{}

	root := &cobra.Command{
		Use:   "traffic-news <STATE>",
		Short: "ADAC traffic news for a German federal state",
		Long: `traffic-news queries the ADAC traffic news backend for one federal state
and prints every message of the result set, page by page.

Example usage:
  traffic-news BB                       # Brandenburg, traffic news only
  traffic-news BY --construction-sites  # Bayern including construction sites
  traffic-news BE --street A100 --json  # one road, JSON lines
  traffic-news states                   # list state codes`,
		Args:          exactlyOneState,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, g, rf, ff, args[0])
		},
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err, "see 'traffic-news --help'")
	})

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (overrides CONFIG_PATH env)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "debug logs on stderr")
	pf.StringVar(&g.color, "color", "auto", "color output: auto, always, never")

	rf.bind(root.Flags())
	ff.bind(root.Flags())

	root.AddCommand(
		newStatesCmd(),
		newQueryCmd(g),
		newServeCmd(g),
		newVersionCmd(),
	)

	return root, g
}

func exactlyOneState(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError(
			fmt.Errorf("expected exactly one STATE argument, got %d", len(args)),
			"run 'traffic-news states' for the list of codes",
		)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return usageError(fmt.Errorf("%s takes no arguments, got %q", cmd.Name(), args), "")
	}
	return nil
}

// loadConfig загружает конфигурацию; ошибка уже классифицирована как ExitConfig.
func loadConfig(g *globalOptions) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, configError(err)
	}
	return cfg, nil
}
