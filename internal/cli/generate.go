package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"
)

type generateRequest struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	ActingUserID string `json:"acting_user_id"`
}

type generateResponse struct {
	Success bool            `json:"success"`
	Reason  string          `json:"reason,omitempty"`
	Invoice json.RawMessage `json:"invoice,omitempty"`
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		period         string
		actingUser     string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "generate <contractor-id>",
		Short: "Generate a contractor's invoice for one month",
		Long:  "Bill every eligible work order of the contractor completed in the given month (YYYY-MM). Defaults to the previous month.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			year, month, err := parsePeriod(period, time.Now().UTC())
			if err != nil {
				return err
			}

			if actingUser == "" {
				actingUser = cfg.ActingUserID
			}
			if actingUser == "" {
				return fmt.Errorf("acting user is required: pass --user or set acting_user_id")
			}

			if idempotencyKey == "" {
				idempotencyKey = newIdempotencyKey()
			}

			var resp generateResponse
			err = newClient(cfg).do(cmd.Context(), "POST", "/v1/contractors/"+url.PathEscape(args[0])+"/invoices", generateRequest{
				Year:         year,
				Month:        month,
				ActingUserID: actingUser,
			}, idempotencyKey, &resp)
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			if !resp.Success {
				fmt.Fprintf(cmd.ErrOrStderr(), "no invoice generated: %s\n", resp.Reason)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "Billing month as YYYY-MM (default: previous month)")
	cmd.Flags().StringVar(&actingUser, "user", "", "Acting user id recorded on the invoice")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key (default: random)")

	return cmd
}

// parsePeriod parses YYYY-MM; empty means the month before now.
func parsePeriod(value string, now time.Time) (int, int, error) {
	if value == "" {
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return prev.Year(), int(prev.Month()), nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q: want YYYY-MM", value)
	}
	return t.Year(), int(t.Month()), nil
}
