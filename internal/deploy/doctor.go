package deploy

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Doctor verifies the environment before any scan begins: the hosting CLI
// must be on PATH, the user must be logged in, and the prototypes root must
// exist. Any failure here is fatal to the run.
func Doctor(ctx context.Context, bin, root string) error {
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%s not found on PATH; install it first (npm install -g %s)", bin, bin)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, bin, "whoami").CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s whoami failed: %w", bin, err)
	}
	if strings.Contains(strings.ToLower(string(out)), "not authenticated") {
		return fmt.Errorf("not logged in to %s; run '%s login' first", bin, bin)
	}

	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return fmt.Errorf("prototypes directory %s does not exist", root)
	}
	return nil
}
