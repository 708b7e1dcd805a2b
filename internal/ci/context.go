// internal/ci/context.go
package ci

import (
	"fmt"
	"os"
	"strings"
)

// Context captures the relevant CI environment state for foundry.
// This assumes execution inside GitHub Actions; everything degrades to
// sensible defaults for local runs.
type Context struct {
	EventName     string
	RefName       string
	BaseRef       string
	SHA           string
	ShortSHA      string
	DefaultBranch string
	OutputPath    string

	// Derived booleans
	IsPullRequest   bool
	IsDefaultBranch bool
	DryRun          bool
}

// LoadContext constructs a CI Context by reading GitHub Actions
// environment variables.
func LoadContext() Context {
	ref := strings.TrimSpace(os.Getenv("GITHUB_REF_NAME"))
	def := firstNonEmpty(os.Getenv("FOUNDRY_DEFAULT_BRANCH"), "main")
	event := os.Getenv("GITHUB_EVENT_NAME")

	// Ensure ShortSHA is populated even when only the full SHA is set.
	sha := os.Getenv("GITHUB_SHA")
	short := sha
	if len(sha) >= 8 {
		short = sha[:8]
	}

	return Context{
		EventName:       event,
		RefName:         ref,
		BaseRef:         os.Getenv("GITHUB_BASE_REF"),
		SHA:             sha,
		ShortSHA:        short,
		DefaultBranch:   def,
		OutputPath:      os.Getenv("GITHUB_OUTPUT"),
		IsPullRequest:   event == "pull_request" || event == "pull_request_target",
		IsDefaultBranch: ref != "" && ref == def,
		DryRun:          os.Getenv("FOUNDRY_DRY_RUN") == "true",
	}
}

// DiffBase returns the git ref changed-file detection diffs against:
// the PR target branch when available, otherwise the default branch.
func (c Context) DiffBase() string {
	base := firstNonEmpty(c.BaseRef, c.DefaultBranch)
	return "origin/" + base
}

// WriteOutput appends a key=value pair to the GitHub Actions output
// file. A no-op outside Actions (no GITHUB_OUTPUT set).
func (c Context) WriteOutput(key, value string) error {
	if c.OutputPath == "" {
		return nil
	}
	f, err := os.OpenFile(c.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.OutputPath, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
		return fmt.Errorf("write %s: %w", c.OutputPath, err)
	}
	return nil
}

// --- helpers ---
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
