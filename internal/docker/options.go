// internal/docker/options.go
//
// This layer adapts a matrix entry + config into concrete BuildOptions
// for the Docker build runner. It assembles the image refs from the
// configured registry coordinates, injects version build args for
// every installed tool, and honors env overrides for the Dockerfile
// and context paths.
//
// Keep it lean: validation, refs, build args, return.

package docker

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"foundry/internal/config"
	"foundry/internal/matrix"
	"foundry/internal/variant"
)

// OptionsFromEntry produces BuildOptions for one build-matrix entry.
//
// Steps:
//   - validate registry coordinates from config
//   - derive per-(variant,arch) tags
//   - inject BASE_IMAGE plus <TOOL>_VERSION build args for installed tools
//   - read env overrides (Dockerfile path, context dir, dry-run)
func OptionsFromEntry(cfg config.Config, entry matrix.Entry) (*BuildOptions, error) {
	registry := strings.TrimSpace(cfg.Image.Registry)
	name := strings.TrimSpace(cfg.Image.Name)
	if registry == "" || name == "" {
		return nil, fmt.Errorf("image.registry and image.name must be set in config to build")
	}

	v := variant.Variant(entry.Base)

	repo := strings.TrimRight(registry, "/")
	if ns := strings.TrimSpace(cfg.Image.Namespace); ns != "" {
		repo += "/" + ns
	}
	repo += "/" + name

	add := func(out *[]string, tag string) {
		tag = cleanTag(tag)
		if tag == "" || !validateTag(tag) {
			return
		}
		*out = append(*out, fmt.Sprintf("%s:%s", repo, tag))
	}

	var refs []string
	add(&refs, fmt.Sprintf("%s-%s", entry.Base, entry.Arch))
	if t := strings.TrimSpace(cfg.Image.Tag); t != "" {
		add(&refs, fmt.Sprintf("%s-%s-%s", t, entry.Base, entry.Arch))
	}
	refs = dedupRefs(refs)
	if len(refs) == 0 {
		return nil, fmt.Errorf("no valid image refs for entry %s/%s", entry.Base, entry.Arch)
	}

	df := getenv("FOUNDRY_DOCKERFILE", fmt.Sprintf("templates/base/%s.Dockerfile", entry.Base))
	ctxPath := getenv("FOUNDRY_BUILD_CONTEXT", ".")

	args := [][2]string{
		{"BASE_IMAGE", v.BaseImage()},
	}
	args = append(args, toolVersionArgs(cfg.Tools)...)

	return &BuildOptions{
		Variant:     v,
		Platform:    entry.Platform,
		Dockerfile:  df,
		ContextPath: ctxPath,
		BuildArgs:   args,
		FullRefs:    refs,
		Pull:        os.Getenv("FOUNDRY_PULL") == "true",
		NoCache:     os.Getenv("FOUNDRY_NOCACHE") == "true",
		Push:        os.Getenv("FOUNDRY_PUSH") == "true",
		DryRun:      os.Getenv("FOUNDRY_DRY_RUN") == "true",
	}, nil
}

// toolVersionArgs emits <TOOL>_VERSION build args for every installed
// tool with a configured version, in sorted order for determinism.
func toolVersionArgs(tools config.Tools) [][2]string {
	var args [][2]string
	for _, m := range []map[string]config.Tool{tools.Languages, tools.Security, tools.DevOps} {
		names := make([]string, 0, len(m))
		for n := range m {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			t := m[n]
			if t.Install && t.Version != "" {
				args = append(args, [2]string{strings.ToUpper(n) + "_VERSION", t.Version})
			}
		}
	}
	return args
}
