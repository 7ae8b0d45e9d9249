// Package deploy wraps the external hosting CLI behind a narrow Publisher
// interface so the pipeline never touches os/exec directly and tests can
// substitute a fake.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// ErrNoURL is returned when the hosting CLI exits cleanly but its output
// contains no deployment URL.
var ErrNoURL = errors.New("no deployment URL found in output")

// Publisher deploys a directory under a project name and returns the
// resulting URL.
type Publisher interface {
	Publish(ctx context.Context, dir, name string) (string, error)
}

// CLI shells out to the surge CLI. One invocation per deployment, bounded by
// Timeout; combined output is scraped for the first hosting-domain URL.
type CLI struct {
	Bin     string
	Domain  string
	Timeout time.Duration

	pattern *regexp.Regexp
}

// NewCLI builds a CLI publisher for the given binary and hosting domain.
func NewCLI(bin, domain string, timeout time.Duration) *CLI {
	return &CLI{
		Bin:     bin,
		Domain:  domain,
		Timeout: timeout,
		pattern: URLPattern(domain),
	}
}

// URLPattern compiles the regexp that recognizes deployment URLs on the given
// hosting domain.
func URLPattern(domain string) *regexp.Regexp {
	return regexp.MustCompile(`https?://[A-Za-z0-9][A-Za-z0-9.-]*\.` + regexp.QuoteMeta(domain))
}

// Publish runs the hosting CLI against dir, deploying it as
// <name>.<domain>. Non-zero exit, timeout, and missing URL are all plain
// failures; the caller decides what to do with the previous cached state.
func (c *CLI) Publish(ctx context.Context, dir, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	target := fmt.Sprintf("%s.%s", name, c.Domain)
	cmd := exec.CommandContext(ctx, c.Bin, dir, target)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s deploying %s", c.Bin, c.Timeout, dir)
		}
		return "", fmt.Errorf("%s failed for %s: %w (output: %s)", c.Bin, dir, err, firstLine(out))
	}

	url, ok := ExtractURL(c.pattern, string(out))
	if !ok {
		return "", fmt.Errorf("deploying %s: %w", dir, ErrNoURL)
	}
	return url, nil
}

// ExtractURL pulls the first matching URL out of free-text CLI output.
func ExtractURL(pattern *regexp.Regexp, output string) (string, bool) {
	m := pattern.FindString(output)
	return m, m != ""
}

func firstLine(out []byte) string {
	s := strings.TrimSpace(string(out))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
