package cmd

import (
	"github.com/spf13/cobra"

	"protodeck/internal/cache"
	"protodeck/internal/cli/output"
	"protodeck/internal/scan"
)

var gcApply bool

// gc prunes cache records whose prototype no longer exists on disk. Stale
// records are harmless, so pruning only happens on explicit request.
var gcCmd = &cobra.Command{
	Use:   "gc",
	Short: "Remove cache records for prototypes that no longer exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree := scan.Scan(cfg.Root)
		c := cache.Load(cfg.CachePath())

		var stale []string
		for _, id := range c.IDs() {
			if _, ok := tree.Find(id); !ok {
				stale = append(stale, id)
			}
		}

		if len(stale) == 0 {
			output.Info("nothing to clean\n")
			return nil
		}

		if !gcApply {
			output.Info("stale records (re-run with --apply to remove):\n")
			output.List("  -", stale)
			return nil
		}

		for _, id := range stale {
			c.Delete(id)
		}
		if err := c.Save(); err != nil {
			return err
		}
		output.Success("removed %d stale record(s)\n", len(stale))
		return nil
	},
}

func init() {
	gcCmd.Flags().BoolVar(&gcApply, "apply", false, "actually remove the stale records")
	rootCmd.AddCommand(gcCmd)
}
