package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"protodeck/internal/config"
	"protodeck/internal/deploy"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "protodeck",
	Short: "protodeck - deploy and catalogue static HTML prototypes",
	Long: `protodeck scans a directory of static HTML prototypes, deploys each
one to a static host via the hosting CLI, caches the resulting URLs, and
renders a gallery index page linking to all of them.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is protodeck.yaml at the project root)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// ensureReady runs the fatal environment checks required before anything
// touches the hosting CLI.
func ensureReady(ctx context.Context, cfg *config.Config) error {
	if err := deploy.Doctor(ctx, cfg.DeployBin, cfg.Root); err != nil {
		return fmt.Errorf("setup check failed: %w", err)
	}
	return nil
}
