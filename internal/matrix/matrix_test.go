package matrix

import (
	"encoding/json"
	"testing"

	"foundry/internal/config"
	"foundry/internal/variant"
)

func TestBuildTieringLaw(t *testing.T) {
	cfg := toolsConfig(true, false, false)

	tests := []struct {
		name       string
		candidates []variant.Variant
		wantTiers  []Tier
		wantCount  int
	}{
		{
			name:       "Three candidates: high, medium, low, 4 entries",
			candidates: []variant.Variant{variant.Ubuntu2404, variant.Ubuntu2204, variant.Alpine320},
			wantTiers:  []Tier{TierHigh, TierHigh, TierMedium, TierLow},
			wantCount:  4,
		},
		{
			name:       "Two candidates: high and medium, 3 entries",
			candidates: []variant.Variant{variant.Ubuntu2204, variant.Alpine320},
			wantTiers:  []Tier{TierHigh, TierHigh, TierMedium},
			wantCount:  3,
		},
		{
			name:       "One candidate: high only, 2 entries",
			candidates: []variant.Variant{variant.Alpine320},
			wantTiers:  []Tier{TierHigh, TierHigh},
			wantCount:  2,
		},
		{
			name:       "Empty candidates: empty include list",
			candidates: nil,
			wantTiers:  nil,
			wantCount:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Build(tt.candidates, cfg, 2)
			if len(m.Include) != tt.wantCount {
				t.Fatalf("got %d entries; want %d: %+v", len(m.Include), tt.wantCount, m.Include)
			}
			for i, want := range tt.wantTiers {
				if m.Include[i].Priority != want {
					t.Errorf("entry[%d].Priority = %s; want %s", i, m.Include[i].Priority, want)
				}
			}
		})
	}
}

func TestBuildFanOut(t *testing.T) {
	cfg := toolsConfig(true, false, false)
	m := Build([]variant.Variant{variant.Ubuntu2404, variant.Ubuntu2204, variant.Alpine320}, cfg, 2)

	// High tier: the top-scoring variant on both architectures.
	if m.Include[0].Base != "ubuntu-24.04" || m.Include[0].Arch != "amd64" || m.Include[0].Platform != "linux/amd64" {
		t.Errorf("entry[0] = %+v; want ubuntu-24.04/amd64", m.Include[0])
	}
	if m.Include[1].Base != "ubuntu-24.04" || m.Include[1].Arch != "arm64" || m.Include[1].Platform != "linux/arm64" {
		t.Errorf("entry[1] = %+v; want ubuntu-24.04/arm64", m.Include[1])
	}

	// Medium and low: amd64 only.
	if m.Include[2].Base != "ubuntu-22.04" || m.Include[2].Arch != "amd64" {
		t.Errorf("entry[2] = %+v; want ubuntu-22.04/amd64", m.Include[2])
	}
	if m.Include[3].Base != "alpine-3.20" || m.Include[3].Arch != "amd64" {
		t.Errorf("entry[3] = %+v; want alpine-3.20/amd64", m.Include[3])
	}
}

func TestMatrixJSONShape(t *testing.T) {
	m := Build([]variant.Variant{variant.Alpine320}, config.Config{}, 2)
	data, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON(): %v", err)
	}

	var decoded struct {
		Include []struct {
			Base     string `json:"base"`
			Arch     string `json:"arch"`
			Platform string `json:"platform"`
			Priority string `json:"priority"`
		} `json:"include"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip unmarshal: %v", err)
	}
	if len(decoded.Include) != 2 {
		t.Fatalf("decoded %d entries; want 2", len(decoded.Include))
	}
	if decoded.Include[0].Platform != "linux/amd64" || decoded.Include[0].Priority != "high" {
		t.Errorf("decoded entry[0] = %+v", decoded.Include[0])
	}
}

func TestEmptyMatrixJSONHasEmptyInclude(t *testing.T) {
	data, err := Matrix{}.JSON()
	if err != nil {
		t.Fatalf("JSON(): %v", err)
	}
	if string(data) != `{"include":[]}` {
		t.Errorf("empty matrix JSON = %s; want {\"include\":[]}", data)
	}
}

func TestEmptyResultSentinel(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{ReasonNoChanges, `{"images":[],"reason":"no_changes"}`},
		{ReasonNoImages, `{"images":[],"reason":"no_images"}`},
	}

	for _, tt := range tests {
		data, err := NewEmptyResult(tt.reason).JSON()
		if err != nil {
			t.Fatalf("JSON(): %v", err)
		}
		if string(data) != tt.want {
			t.Errorf("sentinel = %s; want %s", data, tt.want)
		}
	}
}

// Spec example: compliance change affects all variants, but with every
// tool disabled the skip filter leaves nothing to build.
func TestSkipFilterEndToEnd(t *testing.T) {
	affected := AffectedVariants([]string{"compliance/policy.yaml"})
	if len(affected) != 3 {
		t.Fatalf("affected = %v; want all three variants", affected)
	}

	buildable := FilterSkipped(affected, config.Config{})
	if len(buildable) != 0 {
		t.Fatalf("buildable = %v; want empty", buildable)
	}

	data, err := NewEmptyResult(ReasonNoImages).JSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"images":[],"reason":"no_images"}` {
		t.Errorf("sentinel = %s", data)
	}
}
