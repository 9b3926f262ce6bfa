package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-traffic-news/internal/graphql"
	logctx "github.com/pribylovaa/go-traffic-news/pkg/log"
)

// newQueryCmd — отладочная команда: документ запроса и его хеш.
// С --send документ уходит апстриму, ответ печатается как есть (с отступами).
func newQueryCmd(g *globalOptions) *cobra.Command {
	rf := &requestFlags{}
	ff := &fetchFlags{}
	var send bool

	cmd := &cobra.Command{
		Use:   "query <STATE>",
		Short: "Print the GraphQL request body and its x-graphql-query-hash",
		Long: `Build the request document for one page exactly as it would be sent and print
the body followed by the x-graphql-query-hash header line.

With --send the document is posted and the raw upstream JSON is printed
without any mapping.`,
		Args: exactlyOneState,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rf.request(args[0])
			if err != nil {
				return err
			}

			doc := graphql.BuildQuery(req)

			if !send {
				body, err := doc.Marshal()
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s\n", body)
				_, _ = fmt.Fprintf(w, "%s: %s\n", graphql.HeaderQueryHash, graphql.HeaderHash(body))
				return nil
			}

			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if err := ff.apply(cmd.Flags(), cfg); err != nil {
				return err
			}

			log := setupLogger(cfg.Env, cmd.ErrOrStderr(), fetchLevel(g.verbose))
			ctx := logctx.WithRunID(logctx.Into(cmd.Context(), log), uuid.NewString())

			raw, err := newClient(cfg, nil).Send(ctx, doc)
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := json.Indent(&out, raw, "", "  "); err != nil {
				// Не JSON — печатаем как пришло.
				out.Reset()
				out.Write(raw)
			}
			out.WriteByte('\n')

			_, err = out.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	rf.bind(cmd.Flags())
	cmd.Flags().DurationVar(&ff.timeout, "timeout", 0, "per-request timeout with --send (default from config)")
	cmd.Flags().BoolVar(&send, "send", false, "post the document and print the raw response")

	return cmd
}
