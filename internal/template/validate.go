// internal/template/validate.go
package template

import "strings"

// Validate runs structural checks on a rendered Dockerfile. It returns
// human-readable issues; an empty slice means the file looks sound.
// Callers log issues and still write the file (non-fatal by contract).
func Validate(content string) []string {
	var issues []string

	if !strings.Contains(content, "FROM") {
		issues = append(issues, "Missing FROM instruction")
	}
	if !strings.Contains(content, "FROM base AS final") {
		issues = append(issues, "Missing final layer")
	}
	if strings.Count(content, "FROM") < 2 {
		issues = append(issues, "Expected multiple FROM instructions for multi-stage build")
	}

	return issues
}
