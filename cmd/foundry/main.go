// foundry main entrypoint
//
// This binary is meant to run inside GitHub Actions (and locally for
// development). It generates per-base-image Dockerfiles from the shared
// template, computes the selective build matrix for CI, and drives
// docker buildx for the resulting entries.
//
// Keep this file simple: root command wiring, config loading, shared
// flags. Each subcommand's heavy lifting stays internal.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"foundry/internal/config"
	"foundry/internal/version"
)

const defaultConfigPath = "configs/image-foundry.yaml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foundry",
	Short: "Generate Dockerfiles and selective CI build matrices from one config",
	Long: `foundry renders one Dockerfile per supported base image from a single
shared template plus a declarative tool configuration, then computes a
prioritized build matrix so CI only builds what changed, within a
resource budget.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath,
		"path to the foundry configuration file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configured file; absence is not an error (all
// tools default to disabled), a broken file is.
func loadConfig() (config.Config, error) {
	return config.LoadOrEmpty(cfgFile)
}

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load(".env")

	if err := rootCmd.Execute(); err != nil {
		log.Printf("[foundry] %v", err)
		os.Exit(1)
	}
}
