package gallery

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"protodeck/internal/cache"
	"protodeck/internal/scan"
)

//go:embed gallery.tmpl
var galleryTemplate string

var tmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

// Tile is one prototype card on the gallery page.
type Tile struct {
	Name        string
	Description string
	URL         string
	Deployed    bool
}

// CategoryView groups the tiles under one heading.
type CategoryView struct {
	Name  string
	Tiles []Tile
}

// PageData is everything the gallery template consumes.
type PageData struct {
	Title      string
	Categories []CategoryView
	IndexJSON  template.JS
}

// Render produces the full gallery page for the given tree and cache.
// Output is deterministic for identical inputs: categories follow scan
// order and tile state depends only on cache membership.
func Render(tree *scan.Tree, c *cache.Cache, title string) ([]byte, error) {
	data := PageData{Title: title}

	for _, cat := range tree.Categories {
		view := CategoryView{Name: scan.DisplayName(cat)}
		for _, it := range tree.Items[cat] {
			tile := Tile{Name: it.Name, Description: it.Description}
			if rec, ok := c.Get(it.ID); ok && rec.URL != "" {
				tile.URL = rec.URL
				tile.Deployed = true
			}
			view.Tiles = append(view.Tiles, tile)
		}
		data.Categories = append(data.Categories, view)
	}

	index := Index(tree, c)
	if index == nil {
		index = []Entry{}
	}
	indexJSON, err := json.Marshal(index)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search index: %w", err)
	}
	data.IndexJSON = template.JS(indexJSON)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render gallery: %w", err)
	}
	return buf.Bytes(), nil
}
