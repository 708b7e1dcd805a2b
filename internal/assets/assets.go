package assets

import (
	"embed"
	"fmt"
)

//go:embed dockerfile-template.tmpl
var templateFS embed.FS

// DefaultTemplate loads the embedded shared Dockerfile template. It is
// used by `foundry init` scaffolding and as the fallback when the
// on-disk template is missing.
func DefaultTemplate() string {
	data, err := templateFS.ReadFile("dockerfile-template.tmpl")
	if err != nil {
		// fail-safe: return a marker so generation fails validation
		// loudly instead of writing an empty file
		return fmt.Sprintf("# error reading embedded template: %v", err)
	}
	return string(data)
}
