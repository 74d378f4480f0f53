// Package cmd provides the CLI commands for catalogctl.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fsanano/item-catalog/internal/client"
	"fsanano/item-catalog/internal/config"
	"fsanano/item-catalog/internal/logging"
)

const version = "0.1.0"

// app carries what subcommands need once flags are parsed.
type app struct {
	apiURL  string
	verbose bool

	log    *zap.Logger
	client *client.Client
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Talk to the item catalog API",
		Long: `catalogctl creates and reads catalog items through the HTTP API,
and can compute an item's total price locally.

Examples:
  catalogctl item create --id 1 --name Widget --price 9.99 --tax 2.50
  catalogctl item get 1
  catalogctl price --price 9.99 --tax 2.50`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "catalog API base URL (default from CATALOG_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newItemCmd(a))
	rootCmd.AddCommand(newPriceCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	a.log = logging.NewWithWriter(cfg.Logging, cmd.ErrOrStderr())

	apiURL := cfg.Client.APIURL
	if a.apiURL != "" {
		apiURL = a.apiURL
	}
	a.client = client.NewClient(client.Config{
		APIURL:   apiURL,
		Timeout:  cfg.Client.Timeout,
		CacheTTL: cfg.Client.CacheTTL,
	})
	a.log.Debug("client configured",
		zap.String("api_url", apiURL),
		zap.Duration("cache_ttl", cfg.Client.CacheTTL),
	)

	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalogctl version %s\n", version)
		},
	}
}
