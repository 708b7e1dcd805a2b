package template

import (
	"testing"
	"time"

	"foundry/internal/config"
	"foundry/internal/variant"
)

func TestResolveDefaultsOnEmptyConfig(t *testing.T) {
	vs := ResolveAt(config.Config{}, variant.Ubuntu2404, time.Unix(0, 0))

	tests := []struct {
		name string
		want string
	}{
		{"Base", "ubuntu-24.04"},
		{"BaseImage", "ubuntu:24.04"},
		{"Arch", "amd64"},
		{"GoVersion", "1.22.0"},
		{"NodeVersion", "20"},
		{"PythonVersion", "3.12"},
		{"KubectlVersion", "1.29.0"},
		{"HelmVersion", "3.14.0"},
		{"TerraformVersion", "1.7.0"},
		{"InstallNodeJS", "false"},
		{"InstallPython", "false"},
		{"InstallTrivy", "false"},
		{"InstallCosign", "false"},
		{"InstallSyft", "false"},
		{"InstallDocker", "false"},
		{"InstallKubectl", "false"},
		{"InstallHelm", "false"},
		{"InstallTerraform", "false"},
		{"InstallCompliance", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vs.Lookup(tt.name)
			if !ok {
				t.Fatalf("variable %s not declared", tt.name)
			}
			if got != tt.want {
				t.Errorf("%s = %q; want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveEnabledTools(t *testing.T) {
	cfg := config.Config{
		Tools: config.Tools{
			Languages: map[string]config.Tool{
				"go":     {Install: true, Version: "1.23.1"},
				"python": {Install: true},
			},
			Security: map[string]config.Tool{
				"trivy": {Install: true},
			},
			Packages: []string{"curl", "jq", "curl"},
		},
		Compliance: config.Compliance{Enabled: true},
	}
	vs := ResolveAt(cfg, variant.Alpine320, time.Unix(0, 0))

	if got, _ := vs.Lookup("GoVersion"); got != "1.23.1" {
		t.Errorf("GoVersion = %q; want 1.23.1", got)
	}
	if !vs.IsTrue("InstallPython") {
		t.Error("InstallPython should be true")
	}
	if !vs.IsTrue("InstallTrivy") {
		t.Error("InstallTrivy should be true")
	}
	if !vs.IsTrue("InstallCompliance") {
		t.Error("InstallCompliance should be true")
	}
	if vs.IsTrue("InstallDocker") {
		t.Error("InstallDocker should be false")
	}
	if got, _ := vs.Lookup("BaseImage"); got != "alpine:3.20" {
		t.Errorf("BaseImage = %q; want alpine:3.20", got)
	}

	// Order and duplicates of the package list survive untouched.
	pkgs := vs.Packages()
	want := []string{"curl", "jq", "curl"}
	if len(pkgs) != len(want) {
		t.Fatalf("Packages() has %d entries; want %d", len(pkgs), len(want))
	}
	for i := range want {
		if pkgs[i] != want[i] {
			t.Errorf("Packages()[%d] = %q; want %q", i, pkgs[i], want[i])
		}
	}
}

func TestResolveFlagOrder(t *testing.T) {
	vs := ResolveAt(config.Config{}, variant.Ubuntu2204, time.Unix(0, 0))
	want := []string{
		"InstallNodeJS", "InstallPython", "InstallTrivy", "InstallCosign",
		"InstallSyft", "InstallDocker", "InstallKubectl", "InstallHelm",
		"InstallTerraform", "InstallCompliance",
	}
	got := vs.Flags()
	if len(got) != len(want) {
		t.Fatalf("Flags() has %d entries; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Flags()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestResolveTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 30, 0, 0, time.UTC)
	vs := ResolveAt(config.Config{}, variant.Ubuntu2404, now)
	if got, _ := vs.Lookup("Timestamp"); got != "2026-08-26T12:30:00Z" {
		t.Errorf("Timestamp = %q; want 2026-08-26T12:30:00Z", got)
	}
}

func TestLookupUndeclared(t *testing.T) {
	vs := ResolveAt(config.Config{}, variant.Ubuntu2404, time.Unix(0, 0))
	if _, ok := vs.Lookup("NoSuchVariable"); ok {
		t.Error("Lookup(NoSuchVariable) reported declared")
	}
	if vs.IsTrue("NoSuchFlag") {
		t.Error("IsTrue(NoSuchFlag) = true; undeclared flags are false")
	}
}
