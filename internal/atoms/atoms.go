// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package atoms flattens the stub graph into call-graph atoms: one
// record per primary label, with spec- and proof-dependencies folded
// into a single list. Downstream graph tooling consumes atoms.json
// without caring about the spec/proof split.
package atoms

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// Atom is one call-graph node.
type Atom struct {
	// DisplayName is the primary label.
	DisplayName string `json:"display-name"`

	// Dependencies concatenates the stub's spec-dependencies and
	// proof-dependencies, in that order.
	Dependencies []string `json:"dependencies"`

	// StubPath is the source document path.
	StubPath string `json:"stub-path"`

	// StubText is the statement's own span.
	StubText types.LineRange `json:"stub-text"`
}

// Flatten re-keys the stub map by primary label and merges the two
// dependency lists.
func Flatten(all map[string]types.Stub) map[string]Atom {
	result := make(map[string]Atom, len(all))
	for name, stub := range all {
		label := name
		if i := strings.LastIndex(name, "/"); i >= 0 {
			label = name[i+1:]
		}

		deps := make([]string, 0, len(stub.SpecDependencies)+len(stub.ProofDependencies))
		deps = append(deps, stub.SpecDependencies...)
		deps = append(deps, stub.ProofDependencies...)

		result[label] = Atom{
			DisplayName:  label,
			Dependencies: deps,
			StubPath:     stub.Path,
			StubText:     stub.Spec,
		}
	}
	return result
}

// Write serializes the atom map to path.
func Write(path string, all map[string]Atom) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling atoms: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
