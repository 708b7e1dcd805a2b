// cmd/foundry/validate.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foundry/internal/matrix"
	"foundry/internal/variant"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", cfgFile)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if cfg.Name == "" {
			return fmt.Errorf("project name is required")
		}
		if cfg.Image.Name != "" && cfg.Image.Registry == "" {
			return fmt.Errorf("image.registry is required when image.name is set")
		}

		// Not fatal, but worth flagging: a config where every build
		// would be skip-filtered.
		if matrix.ShouldSkip(variant.Ubuntu2404, cfg) {
			cmd.PrintErrln("[validate] warning: no gating tools enabled; all builds would be skipped")
		}

		cmd.Println("Configuration is valid")
		return nil
	},
}
