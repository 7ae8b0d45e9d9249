// Package pipeline runs the scan -> plan -> deploy -> render batch. Items
// deploy strictly one after another; the cache is saved after every
// successful deployment so an interrupted run keeps the work already done.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"protodeck/internal/cache"
	"protodeck/internal/config"
	"protodeck/internal/deploy"
	"protodeck/internal/gallery"
	"protodeck/internal/log"
	"protodeck/internal/plan"
	"protodeck/internal/project"
	"protodeck/internal/scan"
)

// Pipeline wires the stages together. The cache object is owned here and
// passed explicitly; there is no ambient state.
type Pipeline struct {
	Cfg       *config.Config
	Cache     *cache.Cache
	Publisher deploy.Publisher
}

// Summary reports what a batch run did.
type Summary struct {
	Deployed   int
	Skipped    int
	Failed     int
	GalleryURL string
}

// New builds a pipeline with the CLI publisher from config.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		Cfg:       cfg,
		Cache:     cache.Load(cfg.CachePath()),
		Publisher: deploy.NewCLI(cfg.DeployBin, cfg.Domain, cfg.DeployTimeout),
	}
}

// DeployItem publishes a single prototype and, on success, updates and saves
// the cache. On failure the previous cached record is left untouched.
func (p *Pipeline) DeployItem(ctx context.Context, it scan.Item) error {
	name := it.ID
	override, err := scan.LoadOverride(it.Dir)
	if err != nil {
		log.Warnf("ignoring %s for %s: %v\n", scan.OverrideFile, it.ID, err)
	} else if override.Name != "" {
		name = override.Name
	}

	url, err := p.Publisher.Publish(ctx, it.Dir, name)
	if err != nil {
		return fmt.Errorf("deploy %s: %w", it.ID, err)
	}

	sourceModified := time.Now()
	if info, err := os.Stat(it.EntryPath); err == nil {
		sourceModified = info.ModTime()
	}

	p.Cache.Set(it.ID, cache.Record{
		URL:            url,
		DeployedAt:     time.Now().UTC(),
		SourceModified: sourceModified,
		Category:       it.Category,
		Name:           it.Name,
	})
	if err := p.Cache.Save(); err != nil {
		return fmt.Errorf("save cache after %s: %w", it.ID, err)
	}
	return nil
}

// Run executes the full batch: deploy every changed prototype, then render
// and deploy the gallery. Per-item failures are logged and never abort the
// batch; the gallery is rendered from whatever state the run ends with.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	tree := scan.Scan(p.Cfg.Root)
	items := plan.Generate(tree, p.Cache)

	for _, it := range items {
		if it.Action != plan.ActionDeploy {
			sum.Skipped++
			continue
		}
		override, _ := scan.LoadOverride(it.Proto.Dir)
		if override.Skip {
			log.Printf("skipping %s (%s: skip)\n", it.Proto.ID, scan.OverrideFile)
			sum.Skipped++
			continue
		}
		log.Printf("deploying %s/%s (%s)...\n", it.Proto.Category, it.Proto.ID, it.Reason)
		if err := p.DeployItem(ctx, it.Proto); err != nil {
			log.Errorf("  %v\n", err)
			sum.Failed++
			continue
		}
		rec, _ := p.Cache.Get(it.Proto.ID)
		log.Printf("  -> %s\n", rec.URL)
		sum.Deployed++
	}

	// The gallery step never fails the batch; per-item work is already
	// saved in the cache.
	url, err := p.PublishGallery(ctx, tree)
	if err != nil {
		log.Errorf("%v\n", err)
		return sum, nil
	}
	sum.GalleryURL = url
	return sum, nil
}

// WriteGallery renders the gallery page into the build directory and returns
// the path of the written page.
func (p *Pipeline) WriteGallery(tree *scan.Tree) (string, error) {
	page, err := gallery.Render(tree, p.Cache, p.Cfg.SiteTitle)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(p.Cfg.BuildDir, project.DirPerm); err != nil {
		return "", fmt.Errorf("failed to create build dir: %w", err)
	}
	path := filepath.Join(p.Cfg.BuildDir, project.EntryFile)
	if err := project.AtomicWriteFile(path, page, project.FilePerm); err != nil {
		return "", fmt.Errorf("failed to write gallery page: %w", err)
	}
	return path, nil
}

// PublishGallery renders the gallery and deploys the build directory once.
func (p *Pipeline) PublishGallery(ctx context.Context, tree *scan.Tree) (string, error) {
	if _, err := p.WriteGallery(tree); err != nil {
		return "", err
	}
	url, err := p.Publisher.Publish(ctx, p.Cfg.BuildDir, p.Cfg.GalleryName)
	if err != nil {
		return "", fmt.Errorf("deploy gallery: %w", err)
	}
	return url, nil
}
