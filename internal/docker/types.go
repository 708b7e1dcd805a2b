// internal/docker/types.go
package docker

import "foundry/internal/variant"

type BuildOptions struct {
	Variant     variant.Variant
	Platform    string      // e.g. "linux/amd64"
	Dockerfile  string      // default: "templates/base/<variant>.Dockerfile"
	ContextPath string      // default: "."
	BuildArgs   [][2]string // KEY,VALUE (deterministic)
	Labels      [][2]string // optional

	FullRefs []string // e.g. ["ghcr.io/org/foundry-base:ubuntu-24.04-amd64"]

	Pull    bool // docker build --pull
	NoCache bool // docker build --no-cache
	Push    bool // push after build
	DryRun  bool // print only
}
