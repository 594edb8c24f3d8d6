package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pokecatch/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the
// built-in defaults to ~/.pokecatch/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.pokecatch/config.yaml (or $POKECATCH_HOME/config.yaml) with the
built-in defaults. An existing file is kept unless --force is given.`,
		Example: `  # Create the configuration file
  pokecatch config init

  # Overwrite an existing file
  pokecatch config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if !force {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
		}
	}

	if err = config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
