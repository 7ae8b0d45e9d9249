package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"protodeck/internal/cache"
	"protodeck/internal/config"
	"protodeck/internal/pipeline"
	"protodeck/internal/scan"
)

// fakePublisher records calls and returns canned results per project name.
type fakePublisher struct {
	calls []string
	fail  map[string]bool
}

func (f *fakePublisher) Publish(ctx context.Context, dir, name string) (string, error) {
	f.calls = append(f.calls, name)
	if f.fail[name] {
		return "", errors.New("publish failed")
	}
	return "https://" + name + ".surge.sh", nil
}

func writeEntry(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "<html><head><title>t</title></head></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func testPipeline(t *testing.T, pub *fakePublisher) (*pipeline.Pipeline, string) {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "prototypes")
	writeEntry(t, filepath.Join(root, "onboarding", "welcome"))
	writeEntry(t, filepath.Join(root, "onboarding", "tutorial"))

	cfg := &config.Config{
		Root:          root,
		SiteTitle:     "Gallery",
		GalleryName:   "gallery",
		Domain:        "surge.sh",
		DeployBin:     "surge",
		DeployTimeout: time.Minute,
		BuildDir:      filepath.Join(base, "site"),
	}
	p := &pipeline.Pipeline{
		Cfg:       cfg,
		Cache:     cache.Load(filepath.Join(base, "deployments.json")),
		Publisher: pub,
	}
	return p, root
}

func TestRunDeploysEverythingOnFreshCheckout(t *testing.T) {
	pub := &fakePublisher{}
	p, _ := testPipeline(t, pub)

	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Deployed != 2 || sum.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.GalleryURL != "https://gallery.surge.sh" {
		t.Errorf("unexpected gallery URL: %s", sum.GalleryURL)
	}
	// two items plus the gallery itself
	if len(pub.calls) != 3 {
		t.Fatalf("expected 3 publish calls, got %d (%v)", len(pub.calls), pub.calls)
	}
	if _, ok := p.Cache.Get("welcome"); !ok {
		t.Error("welcome missing from cache after deploy")
	}
}

func TestRunSecondPassSkipsUnchangedItems(t *testing.T) {
	pub := &fakePublisher{}
	p, _ := testPipeline(t, pub)

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if sum.Deployed != 0 || sum.Skipped != 2 {
		t.Fatalf("expected all skips on second pass, got %+v", sum)
	}
}

func TestFailedDeployLeavesCacheUntouchedAndContinues(t *testing.T) {
	pub := &fakePublisher{fail: map[string]bool{"welcome": true}}
	p, _ := testPipeline(t, pub)

	prior := cache.Record{URL: "https://old-welcome.surge.sh", SourceModified: time.Now().Add(-time.Hour)}
	p.Cache.Set("welcome", prior)

	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Failed != 1 {
		t.Fatalf("expected 1 failure, got %+v", sum)
	}
	if sum.Deployed != 1 {
		t.Fatalf("expected batch to continue past the failure, got %+v", sum)
	}

	rec, ok := p.Cache.Get("welcome")
	if !ok {
		t.Fatal("record for welcome disappeared")
	}
	if rec.URL != prior.URL {
		t.Errorf("failed deploy must leave the cached record untouched, got %s", rec.URL)
	}
}

func TestGalleryFailureDoesNotFailTheBatch(t *testing.T) {
	pub := &fakePublisher{fail: map[string]bool{"gallery": true}}
	p, _ := testPipeline(t, pub)

	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run must not fail on gallery deploy failure: %v", err)
	}
	if sum.Deployed != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.GalleryURL != "" {
		t.Errorf("expected empty gallery URL, got %s", sum.GalleryURL)
	}
}

func TestOverrideSkipExcludesItem(t *testing.T) {
	pub := &fakePublisher{}
	p, root := testPipeline(t, pub)

	override := []byte("skip: true\n")
	if err := os.WriteFile(filepath.Join(root, "onboarding", "tutorial", scan.OverrideFile), override, 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	sum, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Deployed != 1 || sum.Skipped != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if _, ok := p.Cache.Get("tutorial"); ok {
		t.Error("skipped item must not be cached")
	}
}

func TestOverrideNameChangesProjectName(t *testing.T) {
	pub := &fakePublisher{}
	p, root := testPipeline(t, pub)

	override := []byte("name: onboarding-welcome\n")
	if err := os.WriteFile(filepath.Join(root, "onboarding", "welcome", scan.OverrideFile), override, 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	rec, ok := p.Cache.Get("welcome")
	if !ok {
		t.Fatal("welcome missing from cache")
	}
	if rec.URL != "https://onboarding-welcome.surge.sh" {
		t.Errorf("override name not used: %s", rec.URL)
	}
}

func TestWriteGalleryProducesPage(t *testing.T) {
	pub := &fakePublisher{}
	p, root := testPipeline(t, pub)

	tree := scan.Scan(root)
	path, err := p.WriteGallery(tree)
	if err != nil {
		t.Fatalf("WriteGallery failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read gallery page: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("gallery page is empty")
	}
}
