// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the blueprint-probe CLI.
// Implements: docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/blueprint-probe/internal/project"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the blueprint-probe CLI.
var rootCmd = &cobra.Command{
	Use:   "blueprint-probe",
	Short: "Probe blueprint projects: extract the statement graph and analyze verification status",
	Long: `blueprint-probe extracts machine-readable metadata from a blueprint
LaTeX project: statements (definitions, lemmas, theorems, ...), their
proofs, and the dependency graph between them.

The stubify subcommand runs the extraction engine and writes stubs.json.
The remaining subcommands derive artifacts from it: atomize flattens the
graph into call-graph atoms, specify and verify summarize specification
and verification status, and graph mirrors the result into a queryable
SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./blueprint-probe.yaml or ~/.config/blueprint-probe/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("blueprint-probe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "blueprint-probe"))
		}
	}

	viper.SetEnvPrefix("BLUEPRINT_PROBE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// projectArg resolves the optional positional project path, defaulting
// to the current directory or a config-file override.
func projectArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if p := viper.GetString("project"); p != "" {
		return p
	}
	return "."
}

// stubsPath is the default stubs.json location inside a project.
func stubsPath(projectDir string) string {
	return filepath.Join(projectDir, project.OutputDir, "stubs.json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
