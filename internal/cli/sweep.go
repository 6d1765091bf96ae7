package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type sweepRequest struct {
	AsOf   *time.Time `json:"as_of,omitempty"`
	Detach bool       `json:"detach,omitempty"`
}

type sweepResult struct {
	InvoiceID string `json:"invoice_id"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
}

type sweepResponse struct {
	WorkflowID string        `json:"workflow_id"`
	RunID      string        `json:"run_id"`
	AsOf       *time.Time    `json:"as_of,omitempty"`
	Results    []sweepResult `json:"results"`
}

func newSweepCmd(root *rootOptions) *cobra.Command {
	var (
		asOf   string
		detach bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the retention sweep",
		Long:  "Re-evaluate every held retained tranche older than six months and release those whose work orders all passed head-office approval.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			req := sweepRequest{Detach: detach}
			if asOf != "" {
				t, err := time.Parse(time.RFC3339, asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q: want RFC 3339", asOf)
				}
				req.AsOf = &t
			}

			var resp sweepResponse
			if err := newClient(cfg).do(cmd.Context(), "POST", "/v1/retention/sweeps", req, "", &resp); err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}

			if !detach {
				counts := map[string]int{}
				for _, r := range resp.Results {
					counts[r.Outcome]++
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "evaluated %d invoices, released %d\n", len(resp.Results), counts["released"])
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate as of this RFC 3339 instant (default: now)")
	cmd.Flags().BoolVar(&detach, "detach", false, "Start the sweep and return without waiting")

	return cmd
}
