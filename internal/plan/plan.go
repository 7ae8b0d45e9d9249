// Package plan decides which prototypes need (re)deployment by comparing the
// working tree against the deployment cache.
package plan

import (
	"os"

	"protodeck/internal/cache"
	"protodeck/internal/log"
	"protodeck/internal/scan"
)

// ActionType defines the operation to be performed for an item.
type ActionType string

const (
	ActionDeploy ActionType = "DEPLOY"
	ActionSkip   ActionType = "SKIP"
)

// Item represents a single unit of work in a deployment plan.
type Item struct {
	Proto  scan.Item
	Action ActionType
	Reason string
}

// NeedsDeploy contains the pure change-detection logic. An item with no
// cached record always deploys; a stat failure on the entry file deploys
// (fail open, never silently skip a real change); otherwise the entry file's
// mod time must be strictly later than the cached one.
func NeedsDeploy(proto scan.Item, rec cache.Record, cached bool) (bool, string) {
	if !cached {
		return true, "never deployed"
	}
	info, err := os.Stat(proto.EntryPath)
	if err != nil {
		return true, "cannot stat entry file"
	}
	if info.ModTime().After(rec.SourceModified) {
		return true, "source changed"
	}
	return false, "up to date"
}

// Generate produces one plan item per prototype, in tree order.
func Generate(tree *scan.Tree, c *cache.Cache) []Item {
	var plan []Item
	for _, proto := range tree.All() {
		rec, ok := c.Get(proto.ID)
		deploy, reason := NeedsDeploy(proto, rec, ok)
		action := ActionSkip
		if deploy {
			action = ActionDeploy
		}
		plan = append(plan, Item{Proto: proto, Action: action, Reason: reason})
	}
	return plan
}

// Changes counts the plan items that will actually deploy.
func Changes(plan []Item) int {
	n := 0
	for _, it := range plan {
		if it.Action == ActionDeploy {
			n++
		}
	}
	return n
}

// PrintSummary prints a high-level summary of a deployment plan.
func PrintSummary(plan []Item) {
	nDeploy := Changes(plan)
	nSkip := len(plan) - nDeploy

	log.Println("---------------------------------------------------")
	log.Printf("PLAN: %d of %d prototypes to deploy\n", nDeploy, len(plan))

	if nDeploy == 0 {
		log.Println("   (No changes detected. Everything is up to date.)")
		log.Println("---------------------------------------------------")
		return
	}

	for _, it := range plan {
		if it.Action != ActionDeploy {
			continue
		}
		log.Printf("   %s/%s\n", it.Proto.Category, it.Proto.ID)
		log.Printf("     reason: %s\n", it.Reason)
	}
	if nSkip > 0 {
		log.Printf("   (%d up to date)\n", nSkip)
	}
	log.Println("---------------------------------------------------")
}
