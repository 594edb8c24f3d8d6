package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pokecatch/internal/config"
)

// NewConfigValidateCmd creates the config validate command. Unlike the other
// commands it reports file errors instead of falling back to defaults.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads ~/.pokecatch/config.yaml with environment overrides and checks
that every value is usable: an absolute base URL, non-negative page size,
timeout and concurrency, a positive page step and a known output format.`,
		Example: `  # Validate current configuration
  pokecatch config validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			cmd.Printf("Configuration is valid: %s\n", cfg.Path())
			return nil
		},
	}
}
