// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-probe/internal/project"
	"github.com/pdiddy/blueprint-probe/internal/stubify"
	"github.com/pdiddy/blueprint-probe/pkg/types"
)

var stubifyCmd = &cobra.Command{
	Use:   "stubify [project]",
	Short: "Extract the statement graph from blueprint LaTeX sources",
	Long: `Stubify scans every content document under blueprint/src, extracts
statement environments with their labels, proofs, flags, and dependency
references, and writes the resolved graph as stubs.json. Project config
macros found along the way are written beside it.

Duplicate labels and unresolvable dependency references abort the run;
nothing is written on a fatal error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStubify,
}

func runStubify(cmd *cobra.Command, args []string) error {
	projectDir := projectArg(args)
	output, _ := cmd.Flags().GetString("output")

	result, err := stubify.Run(types.StubifyConfig{
		ProjectDir: projectDir,
		Output:     output,
	}, os.Stderr)
	if err != nil {
		return err
	}

	if err := stubify.WriteStubs(output, result.Stubs); err != nil {
		return err
	}
	if err := project.WriteConfig(filepath.Join(filepath.Dir(output), stubify.ConfigFile), result.Config); err != nil {
		return err
	}

	cmd.PrintErrf("Wrote %d stubs to %s\n", len(result.Stubs), output)
	return nil
}

func init() {
	stubifyCmd.Flags().StringP("output", "o", "stubs.json", "output file path")

	rootCmd.AddCommand(stubifyCmd)
}
