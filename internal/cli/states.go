package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-traffic-news/internal/models"
)

func newStatesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "states",
		Short: "List federal state codes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if asJSON {
				type state struct {
					Code string `json:"code"`
					Name string `json:"name"`
				}
				out := make([]state, 0, len(models.States()))
				for _, s := range models.States() {
					out = append(out, state{Code: s.String(), Name: s.Name()})
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, s := range models.States() {
				if _, err := fmt.Fprintf(w, "%s  %s\n", s, s.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
