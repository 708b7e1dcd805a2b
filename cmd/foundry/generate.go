// cmd/foundry/generate.go
//
// The generate command renders the shared template once per variant and
// writes templates/base/<variant>.Dockerfile. A failure in one variant
// never aborts the others; validation issues are logged and the file is
// written anyway.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"foundry/internal/assets"
	"foundry/internal/config"
	"foundry/internal/template"
	"foundry/internal/variant"
)

const (
	templatePath = "templates/dockerfile-template.tmpl"
	outputDir    = "templates/base"
)

var generateCmd = &cobra.Command{
	Use:   "generate [variants...]",
	Short: "Generate per-variant Dockerfiles from the shared template",
	Long: `Renders the shared Dockerfile template for each requested variant
(default: all supported variants) and writes the result under
templates/base/. Uses the embedded default template when no on-disk
template exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1) Target variants: explicit args or all supported.
		targets := variant.All()
		if len(args) > 0 {
			targets = targets[:0]
			for _, a := range args {
				v, err := variant.Parse(a)
				if err != nil {
					return err
				}
				targets = append(targets, v)
			}
		}

		// 2) Configuration (missing file means everything disabled).
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// 3) Template text: on-disk wins, embedded default otherwise.
		text, source, err := loadTemplate()
		if err != nil {
			return err
		}
		cmd.Printf("[generate] using template: %s\n", source)

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", outputDir, err)
		}

		// 4) Render each variant independently; one failure never
		// blocks the rest.
		failed := 0
		for _, v := range targets {
			if err := generateOne(cmd, text, cfg, v); err != nil {
				cmd.PrintErrf("[generate] %s failed: %v\n", v, err)
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("generation failed for %d of %d variants", failed, len(targets))
		}
		cmd.Printf("[generate] done: %d Dockerfiles written to %s/\n", len(targets), outputDir)
		return nil
	},
}

func loadTemplate() (text, source string, err error) {
	data, err := os.ReadFile(templatePath)
	if err == nil {
		return string(data), templatePath, nil
	}
	if os.IsNotExist(err) {
		return assets.DefaultTemplate(), "embedded default", nil
	}
	return "", "", fmt.Errorf("read template %s: %w", templatePath, err)
}

func generateOne(cmd *cobra.Command, text string, cfg config.Config, v variant.Variant) error {
	vars := template.Resolve(cfg, v)
	rendered, err := template.Render(text, vars, v)
	if err != nil {
		return err
	}

	// Validation is advisory: log issues, still write the file.
	if issues := template.Validate(rendered); len(issues) > 0 {
		cmd.PrintErrf("[generate] %d potential issues in %s:\n", len(issues), v)
		for _, issue := range issues {
			cmd.PrintErrf("  - %s\n", issue)
		}
	}

	out := filepath.Join(outputDir, v.String()+".Dockerfile")
	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	cmd.Printf("[generate] wrote %s\n", out)
	return nil
}
