// internal/template/resolver.go
//
// The resolver flattens a Config + target variant into the variable set
// the interpreter substitutes into the shared Dockerfile template.
// Every recognized tool gets an Install<Tool> flag ("true"/"false") and
// versioned tools get a <Tool>Version with a fixed fallback. Absence at
// any config depth means false/fallback, never an error.

package template

import (
	"time"

	"foundry/internal/config"
	"foundry/internal/variant"
)

// VariableSet is the immutable per-variant variable mapping handed to
// the interpreter. Scalar values (including boolean flags rendered as
// "true"/"false") live in values; AdditionalPackages is the single
// list-valued entry and is kept separate because only the range block
// consumes it.
type VariableSet struct {
	values   map[string]string
	flags    []string // Install* names, declaration order
	packages []string
}

// Lookup returns the scalar value for name and whether it is declared.
func (vs VariableSet) Lookup(name string) (string, bool) {
	v, ok := vs.values[name]
	return v, ok
}

// IsTrue reports whether a boolean flag resolves to "true". Undeclared
// flags are false, matching the config-absence rule.
func (vs VariableSet) IsTrue(name string) bool {
	return vs.values[name] == "true"
}

// Flags returns the boolean flag names in declaration order. The
// interpreter resolves flag blocks in exactly this order.
func (vs VariableSet) Flags() []string {
	return vs.flags
}

// Packages returns the AdditionalPackages list, configuration order,
// duplicates preserved.
func (vs VariableSet) Packages() []string {
	return vs.packages
}

// Version fallbacks applied when the config leaves a tool version
// unset.
const (
	defaultGoVersion        = "1.22.0"
	defaultNodeVersion      = "20"
	defaultPythonVersion    = "3.12"
	defaultKubectlVersion   = "1.29.0"
	defaultHelmVersion      = "3.14.0"
	defaultTerraformVersion = "1.7.0"
)

// installFlags fixes the flag declaration order: (category, tool,
// variable name). InstallCompliance is appended separately since it
// comes from the compliance section, not the tools tree.
var installFlags = []struct {
	category string
	tool     string
	name     string
}{
	{config.CatLanguages, "nodejs", "InstallNodeJS"},
	{config.CatLanguages, "python", "InstallPython"},
	{config.CatSecurity, "trivy", "InstallTrivy"},
	{config.CatSecurity, "cosign", "InstallCosign"},
	{config.CatSecurity, "syft", "InstallSyft"},
	{config.CatDevOps, "docker", "InstallDocker"},
	{config.CatDevOps, "kubectl", "InstallKubectl"},
	{config.CatDevOps, "helm", "InstallHelm"},
	{config.CatDevOps, "terraform", "InstallTerraform"},
}

// Resolve builds the variable set for one variant. The timestamp is
// taken from the wall clock; use ResolveAt when deterministic output
// matters (tests, reproducible builds).
func Resolve(cfg config.Config, v variant.Variant) VariableSet {
	return ResolveAt(cfg, v, time.Now().UTC())
}

// ResolveAt is Resolve with an explicit timestamp.
func ResolveAt(cfg config.Config, v variant.Variant, now time.Time) VariableSet {
	tools := cfg.Tools

	values := map[string]string{
		"Base":      v.String(),
		"BaseImage": v.BaseImage(),
		"Arch":      "amd64",

		"GoVersion":        tools.VersionOr(config.CatLanguages, "go", defaultGoVersion),
		"NodeVersion":      tools.VersionOr(config.CatLanguages, "nodejs", defaultNodeVersion),
		"PythonVersion":    tools.VersionOr(config.CatLanguages, "python", defaultPythonVersion),
		"KubectlVersion":   tools.VersionOr(config.CatDevOps, "kubectl", defaultKubectlVersion),
		"HelmVersion":      tools.VersionOr(config.CatDevOps, "helm", defaultHelmVersion),
		"TerraformVersion": tools.VersionOr(config.CatDevOps, "terraform", defaultTerraformVersion),

		"Timestamp": now.UTC().Format(time.RFC3339),
	}

	flags := make([]string, 0, len(installFlags)+1)
	for _, f := range installFlags {
		values[f.name] = boolString(tools.Installed(f.category, f.tool))
		flags = append(flags, f.name)
	}
	values["InstallCompliance"] = boolString(cfg.Compliance.Enabled)
	flags = append(flags, "InstallCompliance")

	return VariableSet{
		values:   values,
		flags:    flags,
		packages: tools.Packages,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
