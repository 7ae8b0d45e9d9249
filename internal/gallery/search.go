package gallery

import (
	"strings"

	"protodeck/internal/cache"
	"protodeck/internal/scan"
)

// Entry is one searchable prototype. Only deployed prototypes become
// entries; pending tiles never reach the search index.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

// Index builds the search index from the scan tree and the deployment
// cache, preserving tree order.
func Index(tree *scan.Tree, c *cache.Cache) []Entry {
	var entries []Entry
	for _, it := range tree.All() {
		rec, ok := c.Get(it.ID)
		if !ok || rec.URL == "" {
			continue
		}
		entries = append(entries, Entry{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Category:    it.Category,
			URL:         rec.URL,
		})
	}
	return entries
}

// Filter returns the entries matching query, case-insensitively, across
// name, description, category and ID. An empty query matches everything.
// Input order is preserved.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	for _, field := range []string{e.Name, e.Description, e.Category, e.ID} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
