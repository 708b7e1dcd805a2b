// internal/gitx/gitx.go
//
// Thin wrapper over git for change detection. Failures (shallow clone,
// missing base ref, not a repo) degrade to "no changes" so the caller
// can fall back to its sentinel path instead of dying.

package gitx

import (
	"log"
	"strings"

	"foundry/internal/executil"
)

// ChangedFiles returns the files changed between baseRef and HEAD,
// e.g. baseRef "origin/main". An empty slice means no changes (or that
// git could not answer, which callers treat the same way).
func ChangedFiles(baseRef string) []string {
	out, err := executil.Output("git", "diff", "--name-only", baseRef+"...HEAD")
	if err != nil {
		log.Printf("[gitx] diff against %s failed, treating as no changes: %v", baseRef, err)
		return nil
	}
	if out == "" {
		return nil
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			files = append(files, s)
		}
	}
	return files
}
