// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report derives status summaries from the stub graph: which
// statements are specified (specs.json) and which code declarations are
// verified (proofs.json).
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SpecStatus is one entry of specs.json, keyed by primary label.
type SpecStatus struct {
	Specified bool `json:"specified"`
}

// ProofStatus is one entry of proofs.json, keyed by code-name.
type ProofStatus struct {
	Verified bool   `json:"verified"`
	Status   string `json:"status"`
}

// stubView is the subset of stub fields the reports read.
type stubView struct {
	CodeName string `json:"code-name"`
	SpecOK   bool   `json:"spec-ok"`
	ProofOK  *bool  `json:"proof-ok"`
}

// Specs re-keys the stub mapping by primary label and reduces each stub
// to its specification status.
func Specs(stubsJSON []byte) (map[string]SpecStatus, error) {
	all, err := parse(stubsJSON)
	if err != nil {
		return nil, err
	}

	specs := make(map[string]SpecStatus, len(all))
	for name, stub := range all {
		label := name
		if i := strings.LastIndex(name, "/"); i >= 0 {
			label = name[i+1:]
		}
		specs[label] = SpecStatus{Specified: stub.SpecOK}
	}
	return specs, nil
}

// Proofs reduces the stub mapping to verification status per code-name.
// Stubs without a code declaration are skipped; a stub counts as
// verified only when its proof-side flag is present and true.
func Proofs(stubsJSON []byte) (map[string]ProofStatus, error) {
	all, err := parse(stubsJSON)
	if err != nil {
		return nil, err
	}

	proofs := make(map[string]ProofStatus, len(all))
	for _, stub := range all {
		if stub.CodeName == "" {
			continue
		}
		verified := stub.ProofOK != nil && *stub.ProofOK
		status := "sorries"
		if verified {
			status = "success"
		}
		proofs[stub.CodeName] = ProofStatus{Verified: verified, Status: status}
	}
	return proofs, nil
}

func parse(stubsJSON []byte) (map[string]stubView, error) {
	var all map[string]stubView
	if err := json.Unmarshal(stubsJSON, &all); err != nil {
		return nil, fmt.Errorf("parsing stubs: %w", err)
	}
	return all, nil
}

// WriteJSON serializes a report mapping to path.
func WriteJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
