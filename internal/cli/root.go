package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	baseURL    string
}

// config loads the config file and applies the global flag overrides
func (o *rootOptions) config() (Config, error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return Config{}, err
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	return cfg, cfg.Validate()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "invoicectl",
		Short:         "Operate contractor invoicing",
		Long:          "invoicectl generates monthly contractor invoices, triggers retention sweeps and inspects invoices through the invoicing API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigFile, "Path to the invoicectl config file")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Invoicing API base URL (overrides config)")

	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newSweepCmd(opts))
	cmd.AddCommand(newGetCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
