package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newGetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <invoice-id>",
		Short: "Show an invoice with its linked work orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}

			var resp json.RawMessage
			if err := newClient(cfg).do(cmd.Context(), "GET", "/v1/invoices/"+url.PathEscape(args[0]), nil, "", &resp); err != nil {
				return fmt.Errorf("get failed: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
}
