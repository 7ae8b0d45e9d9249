package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"protodeck/internal/cache"
)

func TestLoadMissingFileYieldsEmptyCache(t *testing.T) {
	c := cache.Load(filepath.Join(t.TempDir(), "deployments.json"))
	if len(c.Records) != 0 {
		t.Fatalf("expected empty cache, got %d records", len(c.Records))
	}
}

func TestLoadMalformedFileYieldsEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c := cache.Load(path)
	if len(c.Records) != 0 {
		t.Fatalf("expected empty cache for corrupt file, got %d records", len(c.Records))
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployments.json")
	c := cache.Load(path)

	now := time.Now().UTC().Truncate(time.Second)
	c.Set("welcome", cache.Record{
		URL:            "https://welcome-proto.surge.sh",
		DeployedAt:     now,
		SourceModified: now.Add(-time.Hour),
		Category:       "onboarding",
		Name:           "Welcome",
	})
	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	c2 := cache.Load(path)
	rec, ok := c2.Get("welcome")
	if !ok {
		t.Fatal("record not found after reload")
	}
	if rec.URL != "https://welcome-proto.surge.sh" {
		t.Errorf("unexpected URL: %s", rec.URL)
	}
	if !rec.SourceModified.Equal(now.Add(-time.Hour)) {
		t.Errorf("sourceModified mismatch: %v", rec.SourceModified)
	}
	if rec.Category != "onboarding" || rec.Name != "Welcome" {
		t.Errorf("metadata mismatch: %#v", rec)
	}
}

func TestDeleteAndIDs(t *testing.T) {
	c := cache.Load(filepath.Join(t.TempDir(), "deployments.json"))
	c.Set("b", cache.Record{URL: "https://b.surge.sh"})
	c.Set("a", cache.Record{URL: "https://a.surge.sh"})

	ids := c.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected IDs: %v", ids)
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("record still present after delete")
	}
}
