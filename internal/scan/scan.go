package scan

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"protodeck/internal/log"
	"protodeck/internal/project"
)

// Item represents one deployable prototype found on disk.
type Item struct {
	ID          string // folder name, unique within its category
	Name        string // display name derived from ID
	Category    string // owning group
	Dir         string // absolute path to the item folder
	EntryPath   string // absolute path to the entry file (index.html)
	Description string // extracted from the entry file's <title>
}

// Tree is the result of a scan: items grouped by category, with category
// insertion order preserved.
type Tree struct {
	Categories []string
	Items      map[string][]Item
}

// skipDirs are never treated as items or categories.
var skipDirs = map[string]struct{}{
	".git":             {},
	".svn":             {},
	"node_modules":     {},
	".DS_Store":        {},
	project.StateDir:   {},
	project.SiteDir:    {},
	project.ConfigFile: {},
}

func skippable(name string) bool {
	if _, ok := skipDirs[name]; ok {
		return true
	}
	return strings.HasPrefix(name, ".")
}

// Scan walks the immediate children of root. A child that directly contains
// an entry file is a single item in a category named after itself; otherwise
// the child is a category and its own children holding entry files are the
// items. Categories that end up empty are dropped. Per-item errors skip the
// item; an unreadable root yields an empty tree, not an error.
func Scan(root string) *Tree {
	tree := &Tree{Items: make(map[string][]Item)}

	entries, err := os.ReadDir(root)
	if err != nil {
		log.Warnf("cannot read prototypes dir %s: %v\n", root, err)
		return tree
	}

	for _, e := range entries {
		if !e.IsDir() || skippable(e.Name()) {
			continue
		}
		dir := filepath.Join(root, e.Name())
		entryPath := filepath.Join(dir, project.EntryFile)

		if fi, err := os.Stat(entryPath); err == nil && !fi.IsDir() {
			// Ungrouped item: the folder doubles as its own category.
			tree.add(newItem(e.Name(), e.Name(), dir, entryPath))
			continue
		}

		scanCategory(tree, e.Name(), dir)
	}

	return tree
}

// scanCategory looks one level deep inside a category folder for items.
func scanCategory(tree *Tree, category, dir string) {
	children, err := os.ReadDir(dir)
	if err != nil {
		log.Warnf("cannot read category dir %s: %v\n", dir, err)
		return
	}
	for _, c := range children {
		if !c.IsDir() || skippable(c.Name()) {
			continue
		}
		itemDir := filepath.Join(dir, c.Name())
		entryPath := filepath.Join(itemDir, project.EntryFile)
		fi, err := os.Stat(entryPath)
		if err != nil || fi.IsDir() {
			continue
		}
		tree.add(newItem(c.Name(), category, itemDir, entryPath))
	}
}

func newItem(id, category, dir, entryPath string) Item {
	return Item{
		ID:          id,
		Name:        DisplayName(id),
		Category:    category,
		Dir:         dir,
		EntryPath:   entryPath,
		Description: Describe(entryPath),
	}
}

func (t *Tree) add(it Item) {
	if _, ok := t.Items[it.Category]; !ok {
		t.Categories = append(t.Categories, it.Category)
	}
	t.Items[it.Category] = append(t.Items[it.Category], it)
}

// Len returns the total number of items across all categories.
func (t *Tree) Len() int {
	n := 0
	for _, items := range t.Items {
		n += len(items)
	}
	return n
}

// Find returns the item with the given ID, searching all categories.
func (t *Tree) Find(id string) (Item, bool) {
	for _, cat := range t.Categories {
		for _, it := range t.Items[cat] {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

// All returns every item in category order.
func (t *Tree) All() []Item {
	var out []Item
	for _, cat := range t.Categories {
		out = append(out, t.Items[cat]...)
	}
	return out
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a folder name like "user-onboarding_v2" into
// "User Onboarding V2".
func DisplayName(id string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(id)
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}
