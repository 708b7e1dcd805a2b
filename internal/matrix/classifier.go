// internal/matrix/classifier.go
//
// Change-impact classification: which base images need a rebuild given
// a set of changed file paths. Shared inputs (config, template,
// compliance policies, workflows) hit every variant; a per-variant base
// Dockerfile hits only its own variant. Anything else is ignored.

package matrix

import (
	"strings"

	"foundry/internal/variant"
)

// Repository paths the classifier keys on.
const (
	ConfigPath        = "configs/image-foundry.yaml"
	TemplatePath      = "templates/dockerfile-template.tmpl"
	BaseDockerfileDir = "templates/base/"
	ComplianceDir     = "compliance/"
	WorkflowsDir      = ".github/workflows/"
)

// AffectedVariants maps changed file paths to the set of variants that
// need rebuilding. The result is deduplicated and returned in canonical
// variant order regardless of input order.
func AffectedVariants(changed []string) []variant.Variant {
	affected := make(map[variant.Variant]bool)

	for _, path := range changed {
		switch {
		case strings.HasPrefix(path, ConfigPath),
			strings.HasPrefix(path, TemplatePath),
			strings.HasPrefix(path, ComplianceDir),
			strings.HasPrefix(path, WorkflowsDir):
			for _, v := range variant.All() {
				affected[v] = true
			}
		case strings.HasPrefix(path, BaseDockerfileDir):
			for _, v := range variant.All() {
				if strings.HasPrefix(path, BaseDockerfileDir+v.String()+".Dockerfile") {
					affected[v] = true
				}
			}
		}
	}

	var out []variant.Variant
	for _, v := range variant.All() {
		if affected[v] {
			out = append(out, v)
		}
	}
	return out
}
