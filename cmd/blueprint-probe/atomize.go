// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-probe/internal/atoms"
	"github.com/pdiddy/blueprint-probe/internal/stubify"
)

var atomizeCmd = &cobra.Command{
	Use:   "atomize [project]",
	Short: "Generate call graph atoms with line numbers",
	Long: `Atomize flattens stubs.json into call-graph atoms keyed by primary
label. Each atom carries the statement's source span and a single
dependency list combining spec- and proof-dependencies. The stub graph
is regenerated first when stubs.json is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAtomize,
}

func runAtomize(cmd *cobra.Command, args []string) error {
	projectDir := projectArg(args)
	output, _ := cmd.Flags().GetString("output")
	regenerate, _ := cmd.Flags().GetBool("regenerate")

	sp := stubsPath(projectDir)
	if err := stubify.Ensure(projectDir, sp, regenerate, os.Stderr); err != nil {
		return err
	}

	all, err := stubify.LoadStubs(sp)
	if err != nil {
		return err
	}

	flattened := atoms.Flatten(all)
	if err := atoms.Write(output, flattened); err != nil {
		return err
	}

	cmd.PrintErrf("Wrote %d atoms to %s\n", len(flattened), output)
	return nil
}

func init() {
	atomizeCmd.Flags().StringP("output", "o", "atoms.json", "output file path")
	atomizeCmd.Flags().Bool("regenerate", false, "regenerate stubs.json before flattening")

	rootCmd.AddCommand(atomizeCmd)
}
