package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"protodeck/internal/cli/output"
	"protodeck/internal/pipeline"
	"protodeck/internal/scan"
)

var deployCmd = &cobra.Command{
	Use:   "deploy <name>",
	Short: "Deploy a single prototype by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := ensureReady(cmd.Context(), cfg); err != nil {
			return err
		}

		tree := scan.Scan(cfg.Root)
		item, ok := tree.Find(args[0])
		if !ok {
			return fmt.Errorf("no prototype named %q under %s", args[0], cfg.Root)
		}

		p := pipeline.New(cfg)
		if err := p.DeployItem(cmd.Context(), item); err != nil {
			return err
		}
		rec, _ := p.Cache.Get(item.ID)
		output.Success("Deployed %s -> %s\n", item.ID, rec.URL)
		return nil
	},
}

var deployAllCmd = &cobra.Command{
	Use:   "deploy-all",
	Short: "Deploy every changed prototype, then the gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := ensureReady(cmd.Context(), cfg); err != nil {
			return err
		}

		sum, err := pipeline.New(cfg).Run(cmd.Context())
		if err != nil {
			return err
		}
		output.Info("deployed %d, skipped %d, failed %d\n", sum.Deployed, sum.Skipped, sum.Failed)
		output.Success("gallery: %s\n", sum.GalleryURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(deployAllCmd)
}
