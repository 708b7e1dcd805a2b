// internal/matrix/matrix.go
//
// Build-matrix assembly. Prioritized candidates get a tier; the tier
// decides architecture fan-out: only the single high-priority pick is
// built for both architectures, everything else gets amd64 only. The
// matrix serializes to the include-list shape CI expects; empty
// candidate sets produce the documented sentinel instead.

package matrix

import (
	"encoding/json"

	"foundry/internal/config"
	"foundry/internal/variant"
)

// Tier is the coarse priority bucket assigned to a variant.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Entry is one concrete (variant, architecture) build job. Entries are
// never mutated after construction.
type Entry struct {
	Base     string `json:"base"`
	Arch     string `json:"arch"`
	Platform string `json:"platform"`
	Priority Tier   `json:"priority"`
}

// Matrix is the build matrix consumed by the CI orchestrator.
type Matrix struct {
	Include []Entry `json:"include"`
}

// Sentinel reason codes for empty results.
const (
	ReasonNoChanges = "no_changes"
	ReasonNoImages  = "no_images"
)

// EmptyResult is emitted when no variants qualify for a build.
type EmptyResult struct {
	Images []string `json:"images"`
	Reason string   `json:"reason"`
}

// NewEmptyResult builds the sentinel with a non-nil image list so it
// serializes as [] rather than null.
func NewEmptyResult(reason string) EmptyResult {
	return EmptyResult{Images: []string{}, Reason: reason}
}

// Build computes the matrix for the given candidates. maxParallel is
// accepted for future throttling but is advisory today: tier fan-out is
// the only cost control applied.
func Build(candidates []variant.Variant, cfg config.Config, maxParallel int) Matrix {
	_ = maxParallel

	prioritized := Prioritize(candidates, cfg)

	// Tier split: with >=3 candidates exactly one high and one medium,
	// the rest low; with 2, high + medium; with 1, high only.
	var high, medium, low []variant.Variant
	switch {
	case len(prioritized) >= 3:
		high = prioritized[:1]
		medium = prioritized[1:2]
		low = prioritized[2:]
	case len(prioritized) == 2:
		high = prioritized[:1]
		medium = prioritized[1:]
	default:
		high = prioritized
	}

	var m Matrix
	for _, v := range high {
		m.Include = append(m.Include, entry(v, "amd64", TierHigh), entry(v, "arm64", TierHigh))
	}
	for _, v := range medium {
		m.Include = append(m.Include, entry(v, "amd64", TierMedium))
	}
	for _, v := range low {
		m.Include = append(m.Include, entry(v, "amd64", TierLow))
	}
	return m
}

func entry(v variant.Variant, arch string, tier Tier) Entry {
	return Entry{
		Base:     v.String(),
		Arch:     arch,
		Platform: "linux/" + arch,
		Priority: tier,
	}
}

// JSON renders the matrix in the flat interchange form.
func (m Matrix) JSON() ([]byte, error) {
	if m.Include == nil {
		m.Include = []Entry{}
	}
	return json.Marshal(m)
}

// JSON renders the empty-result sentinel.
func (e EmptyResult) JSON() ([]byte, error) {
	return json.Marshal(e)
}
