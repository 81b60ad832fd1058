// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-probe/internal/report"
	"github.com/pdiddy/blueprint-probe/internal/stubify"
)

var specifyCmd = &cobra.Command{
	Use:   "specify [project]",
	Short: "Summarize specification status per statement",
	Long: `Specify reduces stubs.json to a per-label specification summary:
whether each statement has been formalized. The stub graph is
regenerated first when stubs.json is missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpecify,
}

func runSpecify(cmd *cobra.Command, args []string) error {
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

	specs, err := report.Specs(data)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(output, specs); err != nil {
		return err
	}

	cmd.PrintErrf("Wrote %d specs to %s\n", len(specs), output)
	return nil
}

func init() {
	specifyCmd.Flags().StringP("output", "o", "specs.json", "output file path")
	specifyCmd.Flags().Bool("regenerate", false, "regenerate stubs.json before summarizing")

	rootCmd.AddCommand(specifyCmd)
}
