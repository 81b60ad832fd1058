// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/blueprint-probe/internal/graphstore"
	"github.com/pdiddy/blueprint-probe/internal/project"
	"github.com/pdiddy/blueprint-probe/internal/stubify"
	"github.com/pdiddy/blueprint-probe/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage the SQLite mirror of the stub graph (store, query)",
	Long: `Graph mirrors stubs.json into a SQLite database under .verilib/ so
dependency questions can be answered without re-parsing the project.`,
}

// --- store subcommand ---

var graphStoreCmd = &cobra.Command{
	Use:   "store [project]",
	Short: "Load stubs.json into the graph database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraphStore,
}

func runGraphStore(cmd *cobra.Command, args []string) error {
	projectDir := projectArg(args)
	regenerate, _ := cmd.Flags().GetBool("regenerate")

	sp := stubsPath(projectDir)
	if err := stubify.Ensure(projectDir, sp, regenerate, os.Stderr); err != nil {
		return err
	}

	all, err := stubify.LoadStubs(sp)
	if err != nil {
		return err
	}

	store, err := graphstore.NewStore(graphConfig(cmd, projectDir))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Load(context.Background(), all); err != nil {
		return err
	}

	cmd.PrintErrf("Stored %d stubs\n", len(all))
	return nil
}

// --- query subcommand ---

var graphQueryCmd = &cobra.Command{
	Use:   "query <stub-name> [project]",
	Short: "List a stub's dependencies or dependents",
	Long: `Query lists what a stub depends on, or with --dependents, which
stubs depend on it. Names are canonical stub names ("path/label").`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGraphQuery,
}

func runGraphQuery(cmd *cobra.Command, args []string) error {
	name := args[0]
	projectDir := projectArg(args[1:])

	store, err := graphstore.NewStore(graphConfig(cmd, projectDir))
	if err != nil {
		return err
	}
	defer store.Close()

	dependents, _ := cmd.Flags().GetBool("dependents")

	var edges []graphstore.Edge
	if dependents {
		edges, err = store.Dependents(context.Background(), name)
	} else {
		edges, err = store.Dependencies(context.Background(), name)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(edges, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range edges {
		fmt.Printf("%-6s %s\n", e.Kind, e.Name)
	}
	return nil
}

func graphConfig(cmd *cobra.Command, projectDir string) types.GraphStoreConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = filepath.Join(projectDir, project.OutputDir, "graph.db")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.GraphStoreConfig{DBPath: dbPath, MaxResults: maxResults}
}

func init() {
	graphStoreCmd.Flags().Bool("regenerate", false, "regenerate stubs.json before loading")
	graphStoreCmd.Flags().String("db", "", "database file (default: <project>/.verilib/graph.db)")

	graphQueryCmd.Flags().Bool("dependents", false, "list dependents instead of dependencies")
	graphQueryCmd.Flags().Bool("json", false, "output JSON")
	graphQueryCmd.Flags().String("db", "", "database file (default: <project>/.verilib/graph.db)")
	graphQueryCmd.Flags().Int("max-results", 0, "maximum rows per query (default 50)")

	graphCmd.AddCommand(graphStoreCmd)
	graphCmd.AddCommand(graphQueryCmd)
	rootCmd.AddCommand(graphCmd)
}
