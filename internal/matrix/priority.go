// internal/matrix/priority.go
//
// Scoring policy for the build matrix. Each variant carries a static
// base score (a fixed importance ranking) plus bonuses for high-value
// tools enabled in the config. The bonuses are global feature flags,
// identical for every candidate, so they can only matter when base
// scores tie; the documented policy is preserved as-is.
//
// All scoring constants live here so a policy change is a local edit.

package matrix

import (
	"sort"

	"foundry/internal/config"
	"foundry/internal/variant"
)

// Static per-variant base scores.
var baseScores = map[variant.Variant]int{
	variant.Ubuntu2404: 10,
	variant.Ubuntu2204: 8,
	variant.Alpine320:  6,
}

// Per-tool bonuses for enabled high-value tools.
const (
	bonusGo     = 5 // primary language toolchain
	bonusTrivy  = 4 // security scanner
	bonusDocker = 3 // container runtime tooling
)

// Score computes the priority score for one candidate.
func Score(v variant.Variant, cfg config.Config) int {
	score := baseScores[v]
	if cfg.Tools.Installed(config.CatLanguages, "go") {
		score += bonusGo
	}
	if cfg.Tools.Installed(config.CatSecurity, "trivy") {
		score += bonusTrivy
	}
	if cfg.Tools.Installed(config.CatDevOps, "docker") {
		score += bonusDocker
	}
	return score
}

// Prioritize orders candidates by descending score. The sort is stable:
// equal scores keep the original candidate order.
func Prioritize(candidates []variant.Variant, cfg config.Config) []variant.Variant {
	out := make([]variant.Variant, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i], cfg) > Score(out[j], cfg)
	})
	return out
}

// ShouldSkip reports whether a variant's build can be skipped entirely:
// true when none of the gating tools (go, trivy, docker, compliance)
// are enabled. The variant parameter is accepted for a future
// per-variant policy; today the decision is config-global.
func ShouldSkip(v variant.Variant, cfg config.Config) bool {
	enabled := cfg.Tools.Installed(config.CatLanguages, "go") ||
		cfg.Tools.Installed(config.CatSecurity, "trivy") ||
		cfg.Tools.Installed(config.CatDevOps, "docker") ||
		cfg.Compliance.Enabled
	return !enabled
}

// FilterSkipped drops candidates ShouldSkip rejects, preserving order.
func FilterSkipped(candidates []variant.Variant, cfg config.Config) []variant.Variant {
	out := make([]variant.Variant, 0, len(candidates))
	for _, v := range candidates {
		if !ShouldSkip(v, cfg) {
			out = append(out, v)
		}
	}
	return out
}
