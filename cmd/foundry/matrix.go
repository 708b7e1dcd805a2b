// cmd/foundry/matrix.go
//
// The matrix command selects candidate variants (by mode), filters out
// builds with nothing enabled, and emits the prioritized build matrix
// as JSON: to stdout, to --output, and to GITHUB_OUTPUT when running in
// Actions. Empty selections produce the documented sentinel instead of
// an error.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundry/internal/ci"
	"foundry/internal/config"
	"foundry/internal/gitx"
	"foundry/internal/matrix"
	"foundry/internal/variant"
)

var (
	matrixMode    string
	matrixImages  []string
	maxParallel   int
	matrixOutFile string
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Compute the prioritized CI build matrix",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1) CI context + effective mode.
		ctx := ci.LoadContext()
		forced, err := ci.ParseMode(matrixMode)
		if err != nil {
			return err
		}
		mode := ci.ResolveMode(ctx, forced)
		cmd.PrintErrf("[matrix] resolved mode: %s\n", mode)

		// 2) Configuration.
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 3) Candidate selection; empty selections short-circuit to a
		// sentinel, which is a normal outcome, not an error.
		candidates, reason, err := selectCandidates(cmd, mode, ctx, cfg)
		if err != nil {
			return err
		}
		if reason != "" {
			return emitSentinel(ctx, reason)
		}

		// 4) Prioritized matrix.
		m := matrix.Build(candidates, cfg, maxParallel)
		data, err := m.JSON()
		if err != nil {
			return err
		}
		cmd.PrintErrf("[matrix] %d jobs for %d variants\n", len(m.Include), len(candidates))
		return emitJSON(ctx, data)
	},
}

func init() {
	matrixCmd.Flags().StringVar(&matrixMode, "mode", "auto",
		"selection mode: auto, changed, config, all, select")
	matrixCmd.Flags().StringSliceVar(&matrixImages, "images", nil,
		"explicit variants to build (select mode)")
	matrixCmd.Flags().IntVar(&maxParallel, "max-parallel", 2,
		"maximum parallel builds (advisory)")
	matrixCmd.Flags().StringVar(&matrixOutFile, "output", "",
		"write the matrix JSON to this file instead of stdout only")
}

// selectCandidates returns the variant set for the mode, or a sentinel
// reason when nothing qualifies.
func selectCandidates(cmd *cobra.Command, mode ci.Mode, ctx ci.Context, cfg config.Config) ([]variant.Variant, string, error) {
	switch mode {
	case ci.ModeChanged:
		files := gitx.ChangedFiles(ctx.DiffBase())
		if len(files) == 0 {
			return nil, matrix.ReasonNoChanges, nil
		}
		affected := matrix.AffectedVariants(files)
		cmd.PrintErrf("[matrix] changed files: %d, affected variants: %v\n", len(files), affected)

		buildable := make([]variant.Variant, 0, len(affected))
		for _, v := range affected {
			if matrix.ShouldSkip(v, cfg) {
				cmd.PrintErrf("[matrix] skipping %s - no enabled tools\n", v)
				continue
			}
			buildable = append(buildable, v)
		}
		if len(buildable) == 0 {
			return nil, matrix.ReasonNoImages, nil
		}
		return buildable, "", nil

	case ci.ModeConfig:
		buildable := matrix.FilterSkipped(variant.All(), cfg)
		if len(buildable) == 0 {
			return nil, matrix.ReasonNoImages, nil
		}
		return buildable, "", nil

	case ci.ModeAll:
		return variant.All(), "", nil

	case ci.ModeSelect:
		if len(matrixImages) == 0 {
			return nil, matrix.ReasonNoImages, nil
		}
		var out []variant.Variant
		for _, s := range matrixImages {
			v, err := variant.Parse(s)
			if err != nil {
				return nil, "", err
			}
			out = append(out, v)
		}
		return out, "", nil

	default:
		return nil, "", fmt.Errorf("unhandled mode %q", mode)
	}
}

func emitSentinel(ctx ci.Context, reason string) error {
	data, err := matrix.NewEmptyResult(reason).JSON()
	if err != nil {
		return err
	}
	return emitJSON(ctx, data)
}

// emitJSON prints the payload on stdout (for pipeline capture), writes
// --output when set, and appends to GITHUB_OUTPUT inside Actions.
func emitJSON(ctx ci.Context, data []byte) error {
	fmt.Println(string(data))
	if matrixOutFile != "" {
		if err := os.WriteFile(matrixOutFile, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", matrixOutFile, err)
		}
	}
	return ctx.WriteOutput("matrix", string(data))
}
