package docker

import (
	"testing"

	"foundry/internal/config"
	"foundry/internal/matrix"
)

func testConfig() config.Config {
	return config.Config{
		Image: config.Image{
			Name:      "foundry-base",
			Tag:       "latest",
			Registry:  "ghcr.io",
			Namespace: "myorg",
		},
		Tools: config.Tools{
			Languages: map[string]config.Tool{
				"go":     {Install: true, Version: "1.22.0"},
				"nodejs": {Install: false, Version: "20"},
			},
			DevOps: map[string]config.Tool{
				"kubectl": {Install: true, Version: "1.29.0"},
			},
		},
	}
}

func TestOptionsFromEntry(t *testing.T) {
	entry := matrix.Entry{
		Base:     "ubuntu-24.04",
		Arch:     "amd64",
		Platform: "linux/amd64",
		Priority: matrix.TierHigh,
	}

	opts, err := OptionsFromEntry(testConfig(), entry)
	if err != nil {
		t.Fatalf("OptionsFromEntry: %v", err)
	}

	wantRefs := []string{
		"ghcr.io/myorg/foundry-base:ubuntu-24.04-amd64",
		"ghcr.io/myorg/foundry-base:latest-ubuntu-24.04-amd64",
	}
	if len(opts.FullRefs) != len(wantRefs) {
		t.Fatalf("FullRefs = %v; want %v", opts.FullRefs, wantRefs)
	}
	for i := range wantRefs {
		if opts.FullRefs[i] != wantRefs[i] {
			t.Errorf("FullRefs[%d] = %q; want %q", i, opts.FullRefs[i], wantRefs[i])
		}
	}

	if opts.Platform != "linux/amd64" {
		t.Errorf("Platform = %q; want linux/amd64", opts.Platform)
	}
	if opts.Dockerfile != "templates/base/ubuntu-24.04.Dockerfile" {
		t.Errorf("Dockerfile = %q", opts.Dockerfile)
	}

	// BASE_IMAGE first, then installed tools with versions, sorted;
	// disabled nodejs contributes nothing.
	wantArgs := [][2]string{
		{"BASE_IMAGE", "ubuntu:24.04"},
		{"GO_VERSION", "1.22.0"},
		{"KUBECTL_VERSION", "1.29.0"},
	}
	if len(opts.BuildArgs) != len(wantArgs) {
		t.Fatalf("BuildArgs = %v; want %v", opts.BuildArgs, wantArgs)
	}
	for i := range wantArgs {
		if opts.BuildArgs[i] != wantArgs[i] {
			t.Errorf("BuildArgs[%d] = %v; want %v", i, opts.BuildArgs[i], wantArgs[i])
		}
	}
}

func TestOptionsFromEntryRequiresRegistryCoords(t *testing.T) {
	entry := matrix.Entry{Base: "alpine-3.20", Arch: "amd64", Platform: "linux/amd64"}
	if _, err := OptionsFromEntry(config.Config{}, entry); err == nil {
		t.Error("expected error without image.registry/image.name, got none")
	}
}

func TestCleanTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ubuntu-24.04", "ubuntu-24.04"},
		{"feature/foo bar", "feature-foo-bar"},
		{"a--b", "a-b"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := cleanTag(tt.in); got != tt.want {
			t.Errorf("cleanTag(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedupRefs(t *testing.T) {
	in := []string{"a:1", "b:2", "a:1"}
	got := dedupRefs(in)
	if len(got) != 2 || got[0] != "a:1" || got[1] != "b:2" {
		t.Errorf("dedupRefs(%v) = %v", in, got)
	}
}
