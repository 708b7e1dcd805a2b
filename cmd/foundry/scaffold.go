// cmd/foundry/scaffold.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundry/internal/assets"
)

const exampleConfig = `# foundry configuration
name: my-images
version: "1.0.0"
description: "Custom base container images"

image:
  name: "base-image"
  tag: "latest"
  registry: "ghcr.io"
  namespace: "myorg"

tools:
  languages:
    go:
      install: true
      version: "1.22.0"
  security:
    trivy:
      install: true
  devops:
    docker:
      install: false
  packages:
    - curl
    - git

compliance:
  enabled: false
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new foundry project",
	Long:  `Creates the project layout with an example configuration and the default shared template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := []string{
			"templates/base",
			"configs",
			"compliance",
			".github/workflows",
		}
		for _, dir := range dirs {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", dir, err)
			}
		}

		wrote, err := writeIfAbsent(defaultConfigPath, exampleConfig)
		if err != nil {
			return err
		}
		if wrote {
			cmd.Printf("[init] wrote %s\n", defaultConfigPath)
		}

		wrote, err = writeIfAbsent(templatePath, assets.DefaultTemplate())
		if err != nil {
			return err
		}
		if wrote {
			cmd.Printf("[init] wrote %s\n", templatePath)
		}

		cmd.Println("[init] project initialized")
		cmd.Println("next: edit configs/image-foundry.yaml, then run `foundry generate`")
		return nil
	},
}

// writeIfAbsent creates the file unless it already exists; existing
// files are never overwritten.
func writeIfAbsent(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}
