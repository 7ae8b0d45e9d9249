// Package cache persists the mapping from prototype IDs to their deployed
// URLs. The cache file is plain JSON so it stays hand-editable; load failures
// of any kind degrade to an empty cache because the tool must work on a fresh
// checkout. There is no locking: concurrent runs race on this file and are
// out of contract.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"protodeck/internal/log"
	"protodeck/internal/project"
)

// Record tracks where and when a prototype was last deployed.
type Record struct {
	URL            string    `json:"url"`
	DeployedAt     time.Time `json:"deployedAt"`
	SourceModified time.Time `json:"sourceModified"`
	Category       string    `json:"category"`
	Name           string    `json:"name"`
}

// Cache is the in-memory registry of deployment records, keyed by item ID.
type Cache struct {
	path    string
	Records map[string]Record
}

// Load reads the cache file at path. A missing or malformed file yields an
// empty cache; corruption is warned about, never fatal.
func Load(path string) *Cache {
	c := &Cache{path: path, Records: make(map[string]Record)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("cannot read deployment cache %s: %v\n", path, err)
		}
		return c
	}

	if err := json.Unmarshal(data, &c.Records); err != nil {
		log.Warnf("corrupt deployment cache %s ignored: %v\n", path, err)
		c.Records = make(map[string]Record)
	}
	return c
}

// Save writes the full cache atomically.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), project.DirPerm); err != nil {
		return fmt.Errorf("failed to ensure cache dir: %w", err)
	}
	data, err := json.MarshalIndent(c.Records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment cache: %w", err)
	}
	return project.AtomicWriteFile(c.path, append(data, '\n'), project.FilePerm)
}

// Get returns the record for an item ID.
func (c *Cache) Get(id string) (Record, bool) {
	r, ok := c.Records[id]
	return r, ok
}

// Set stores or overwrites the record for an item ID.
func (c *Cache) Set(id string, r Record) {
	c.Records[id] = r
}

// Delete removes the record for an item ID.
func (c *Cache) Delete(id string) {
	delete(c.Records, id)
}

// IDs returns all cached item IDs in sorted order.
func (c *Cache) IDs() []string {
	ids := make([]string, 0, len(c.Records))
	for id := range c.Records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
