package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OverrideFile is an optional per-item config file inside an item folder.
const OverrideFile = "deck.yaml"

// Override carries per-item deployment settings.
type Override struct {
	// Name replaces the derived project name for deployment.
	Name string `yaml:"name,omitempty"`
	// Skip excludes the item from deploy-all runs.
	Skip bool `yaml:"skip,omitempty"`
}

// LoadOverride reads deck.yaml from an item folder. A missing file returns a
// zero Override and no error.
func LoadOverride(itemDir string) (Override, error) {
	var o Override
	data, err := os.ReadFile(filepath.Join(itemDir, OverrideFile))
	if err != nil {
		if os.IsNotExist(err) {
			return o, nil
		}
		return o, fmt.Errorf("failed to read %s: %w", OverrideFile, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("invalid yaml in %s: %w", OverrideFile, err)
	}
	return o, nil
}
