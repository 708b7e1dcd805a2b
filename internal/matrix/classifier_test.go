package matrix

import (
	"reflect"
	"testing"

	"foundry/internal/variant"
)

func TestAffectedVariants(t *testing.T) {
	all := variant.All()

	tests := []struct {
		name    string
		changed []string
		want    []variant.Variant
	}{
		{
			name:    "Config change rebuilds all",
			changed: []string{"configs/image-foundry.yaml"},
			want:    all,
		},
		{
			name:    "Template change rebuilds all",
			changed: []string{"templates/dockerfile-template.tmpl"},
			want:    all,
		},
		{
			name:    "Compliance policy rebuilds all",
			changed: []string{"compliance/policy.yaml"},
			want:    all,
		},
		{
			name:    "Workflow change rebuilds all",
			changed: []string{".github/workflows/build.yml"},
			want:    all,
		},
		{
			name:    "Per-variant Dockerfile rebuilds only that variant",
			changed: []string{"templates/base/alpine-3.20.Dockerfile"},
			want:    []variant.Variant{variant.Alpine320},
		},
		{
			name: "Two per-variant Dockerfiles",
			changed: []string{
				"templates/base/ubuntu-22.04.Dockerfile",
				"templates/base/ubuntu-24.04.Dockerfile",
			},
			want: []variant.Variant{variant.Ubuntu2404, variant.Ubuntu2204},
		},
		{
			name:    "Unrelated paths contribute nothing",
			changed: []string{"README.md", "docs/usage.md", "scripts/foo.sh"},
			want:    nil,
		},
		{
			name:    "No changes",
			changed: nil,
			want:    nil,
		},
		{
			name: "Duplicates collapse",
			changed: []string{
				"templates/base/alpine-3.20.Dockerfile",
				"templates/base/alpine-3.20.Dockerfile",
			},
			want: []variant.Variant{variant.Alpine320},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AffectedVariants(tt.changed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AffectedVariants(%v) = %v; want %v", tt.changed, got, tt.want)
			}
		})
	}
}

func TestAffectedVariantsOrderIndependence(t *testing.T) {
	a := AffectedVariants([]string{
		"templates/base/alpine-3.20.Dockerfile",
		"templates/base/ubuntu-24.04.Dockerfile",
	})
	b := AffectedVariants([]string{
		"templates/base/ubuntu-24.04.Dockerfile",
		"templates/base/alpine-3.20.Dockerfile",
	})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("result depends on input order: %v vs %v", a, b)
	}
}
