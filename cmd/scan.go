package cmd

import (
	"github.com/spf13/cobra"

	"protodeck/internal/cache"
	"protodeck/internal/plan"
	"protodeck/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the prototypes directory and show what would deploy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree := scan.Scan(cfg.Root)
		c := cache.Load(cfg.CachePath())
		plan.PrintSummary(plan.Generate(tree, c))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
