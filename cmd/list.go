package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"protodeck/internal/cache"
	"protodeck/internal/cli/output"
	"protodeck/internal/scan"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prototypes and their deployment status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree := scan.Scan(cfg.Root)
		c := cache.Load(cfg.CachePath())

		for _, cat := range tree.Categories {
			output.Info("%s\n", scan.DisplayName(cat))
			for _, it := range tree.Items[cat] {
				if rec, ok := c.Get(it.ID); ok && rec.URL != "" {
					output.Info("  %-24s %s\n", it.ID, rec.URL)
				} else {
					output.Info("  %-24s (pending)\n", it.ID)
				}
			}
		}
		return nil
	},
}

var urlCmd = &cobra.Command{
	Use:   "url <name>",
	Short: "Print the deployed URL of a prototype",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c := cache.Load(cfg.CachePath())
		rec, ok := c.Get(args[0])
		if !ok || rec.URL == "" {
			return fmt.Errorf("%s has not been deployed yet", args[0])
		}
		output.Info("%s\n", rec.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(urlCmd)
}
