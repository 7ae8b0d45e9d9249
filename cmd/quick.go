package cmd

import (
	"github.com/spf13/cobra"

	"protodeck/internal/cli/output"
	"protodeck/internal/pipeline"
	"protodeck/internal/plan"
	"protodeck/internal/scan"
)

// quick is deploy-all with the plan printed first; the one-command workflow.
var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Scan, deploy everything changed, and refresh the gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := ensureReady(cmd.Context(), cfg); err != nil {
			return err
		}

		p := pipeline.New(cfg)
		tree := scan.Scan(cfg.Root)
		plan.PrintSummary(plan.Generate(tree, p.Cache))

		sum, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}
		output.Success("gallery: %s\n", sum.GalleryURL)
		return nil
	},
}

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render the gallery page and deploy it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := ensureReady(cmd.Context(), cfg); err != nil {
			return err
		}

		p := pipeline.New(cfg)
		url, err := p.PublishGallery(cmd.Context(), scan.Scan(cfg.Root))
		if err != nil {
			return err
		}
		output.Success("gallery: %s\n", url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(galleryCmd)
}
