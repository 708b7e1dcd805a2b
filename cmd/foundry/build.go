// cmd/foundry/build.go
//
// The build command is the thin collaborator around docker buildx: it
// computes (or reuses) a build matrix and runs one buildx invocation
// per entry. All policy lives in internal/matrix; this is plumbing.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foundry/internal/ci"
	"foundry/internal/docker"
	"foundry/internal/matrix"
)

var buildDryRun bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build images for the selected matrix entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ci.LoadContext()
		forced, err := ci.ParseMode(matrixMode)
		if err != nil {
			return err
		}
		mode := ci.ResolveMode(ctx, forced)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		candidates, reason, err := selectCandidates(cmd, mode, ctx, cfg)
		if err != nil {
			return err
		}
		if reason != "" {
			cmd.PrintErrf("[build] nothing to build (%s)\n", reason)
			return nil
		}

		m := matrix.Build(candidates, cfg, maxParallel)
		cmd.PrintErrf("[build] %d jobs\n", len(m.Include))

		for _, entry := range m.Include {
			opts, err := docker.OptionsFromEntry(cfg, entry)
			if err != nil {
				return fmt.Errorf("entry %s/%s: %w", entry.Base, entry.Arch, err)
			}
			if buildDryRun || ctx.DryRun {
				opts.DryRun = true
			}
			if err := docker.BuildAndPush(opts); err != nil {
				return fmt.Errorf("build %s/%s failed: %w", entry.Base, entry.Arch, err)
			}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&matrixMode, "mode", "auto",
		"selection mode: auto, changed, config, all, select")
	buildCmd.Flags().StringSliceVar(&matrixImages, "images", nil,
		"explicit variants to build (select mode)")
	buildCmd.Flags().IntVar(&maxParallel, "max-parallel", 2,
		"maximum parallel builds (advisory)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false,
		"print docker commands without executing them")
}
