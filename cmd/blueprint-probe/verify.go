// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-probe/internal/report"
	"github.com/pdiddy/blueprint-probe/internal/stubify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [project]",
	Short: "Summarize proof verification status per code declaration",
	Long: `Verify reduces stubs.json to a verification summary keyed by
code-name. A declaration counts as verified when its proof is marked
formalized; statements without a code declaration are skipped. The stub
graph is regenerated first when stubs.json is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	projectDir := projectArg(args)
	output, _ := cmd.Flags().GetString("output")
	regenerate, _ := cmd.Flags().GetBool("regenerate")

	sp := stubsPath(projectDir)
	if err := stubify.Ensure(projectDir, sp, regenerate, os.Stderr); err != nil {
		return err
	}

	data, err := os.ReadFile(sp)
	if err != nil {
		return err
	}

	proofs, err := report.Proofs(data)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(output, proofs); err != nil {
		return err
	}

	cmd.PrintErrf("Wrote %d proofs to %s\n", len(proofs), output)
	return nil
}

func init() {
	verifyCmd.Flags().StringP("output", "o", "proofs.json", "output file path")
	verifyCmd.Flags().Bool("regenerate", false, "regenerate stubs.json before summarizing")

	rootCmd.AddCommand(verifyCmd)
}
