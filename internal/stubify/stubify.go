// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stubify orchestrates the extraction engine: document
// discovery, per-document parsing, project config scraping, assembly,
// and artifact writing. The derived-artifact commands call Ensure to
// get a stubs.json to work from.
// Implements: docs/ARCHITECTURE § Pipeline Interface.
package stubify

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/blueprint-probe/internal/project"
	"github.com/pdiddy/blueprint-probe/internal/stubs"
	"github.com/pdiddy/blueprint-probe/internal/texparse"
	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// ConfigFile is the scraped project config artifact, written next to
// stubs.json only when at least one config macro was found.
const ConfigFile = "blueprint.yaml"

// Result holds everything one engine run produces.
type Result struct {
	// Stubs is the final graph, keyed by canonical stub name.
	Stubs map[string]*types.Stub

	// Config is the scraped project-level configuration.
	Config types.ProjectConfig
}

// Run executes the engine over a project. The parse phase handles each
// document independently; assembly then runs once over the combined
// results, in document traversal order. Progress and warnings go to w.
// Any fatal error aborts before anything is written.
func Run(cfg types.StubifyConfig, w io.Writer) (*Result, error) {
	srcDir, err := project.SourceDir(cfg.ProjectDir)
	if err != nil {
		return nil, err
	}

	envTypes, err := project.LoadEnvironments(srcDir)
	if err != nil {
		return nil, fmt.Errorf("reading environment option: %w", err)
	}
	fmt.Fprintf(w, "looking for environments: %v\n", envTypes)

	docs, err := project.ListDocuments(srcDir)
	if err != nil {
		return nil, err
	}

	var projectCfg types.ProjectConfig
	if data, err := os.ReadFile(filepath.Join(srcDir, "web.tex")); err == nil {
		project.ScrapeConfig(&projectCfg, string(data))
	}

	var statements []texparse.Statement
	var proofs []texparse.StandaloneProof
	for _, doc := range docs {
		data, err := os.ReadFile(doc.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", doc.AbsPath, err)
		}
		text := string(data)

		project.ScrapeConfig(&projectCfg, text)

		docStatements, docProofs := texparse.ParseDocument(text, doc.RelPath, envTypes)
		statements = append(statements, docStatements...)
		proofs = append(proofs, docProofs...)
	}

	all, err := stubs.Assemble(statements, proofs, w)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "found %d stubs\n", len(all))

	return &Result{Stubs: all, Config: projectCfg}, nil
}

// WriteStubs serializes the stub map to path, creating parent
// directories as needed.
func WriteStubs(path string, all map[string]*types.Stub) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling stubs: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadStubs reads a previously written stubs.json mapping.
func LoadStubs(path string) (map[string]types.Stub, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var all map[string]types.Stub
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return all, nil
}

// Ensure makes sure stubsPath holds a current stubs.json, running the
// engine when the file is missing or force is set. The scraped project
// config lands beside it.
func Ensure(projectDir, stubsPath string, force bool, w io.Writer) error {
	if !force {
		if _, err := os.Stat(stubsPath); err == nil {
			return nil
		}
		fmt.Fprintf(w, "%s not found, running stubify...\n", stubsPath)
	} else {
		fmt.Fprintln(w, "regenerating stubs...")
	}

	result, err := Run(types.StubifyConfig{ProjectDir: projectDir, Output: stubsPath}, w)
	if err != nil {
		return err
	}
	if err := WriteStubs(stubsPath, result.Stubs); err != nil {
		return err
	}
	return project.WriteConfig(filepath.Join(filepath.Dir(stubsPath), ConfigFile), result.Config)
}
