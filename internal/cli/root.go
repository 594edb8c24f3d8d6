package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pokecatch/internal/config"
	"github.com/rshade/pokecatch/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pokecatch CLI.
// It wires up config overlays, logging and tracing, and the browse, list and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "pokecatch",
		Short: "Browse the Pokémon catalog from your terminal",
		Long: `pokecatch fetches a page of the Pokémon catalog, resolves every entry's
details in parallel and shows them as a searchable card grid. Press "m" in
the grid to load more.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfigOverlay(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over ~/.pokecatch/config.yaml")
	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), newConfigCmd())

	return cmd
}

// applyConfigOverlay merges the --config file over the global configuration
// and validates the result.
func applyConfigOverlay(cmd *cobra.Command) error {
	cfg := config.GetGlobalConfig()

	overlay, _ := cmd.Flags().GetString("config")
	if overlay != "" {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
	}

	// The config commands must run against a broken file so it can be fixed.
	if parent := cmd.Parent(); parent != nil && parent.Name() == "config" {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("invalid configuration: %w", err)}
	}
	return nil
}

const rootCmdExample = `  # Browse the catalog interactively
  pokecatch browse

  # Start with 50 entries, filtered to names containing "saur"
  pokecatch browse --limit 50 --query saur

  # Print the first 30 entries as JSON, strongest attack first
  pokecatch list --limit 30 --sort attack:desc --output json

  # Write a default configuration file
  pokecatch config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
