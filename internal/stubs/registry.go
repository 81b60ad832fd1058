// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stubs assembles per-document parse results into the final
// cross-referenced stub graph: a project-wide label namespace, stub
// construction, standalone-proof merging, and reference resolution.
// Implements: docs/ARCHITECTURE § Assembly.
package stubs

import "fmt"

// Registry is the project-wide label table. It is constructed per run
// and threaded through the assembly phase explicitly; nothing in this
// package holds ambient state, so tests build isolated instances.
type Registry struct {
	reserved map[string]bool
	owner    map[string]string
	counter  uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		reserved: make(map[string]bool),
		owner:    make(map[string]string),
	}
}

// Reserve claims a label for the project namespace. Claiming a label
// that is already reserved returns a DuplicateLabelError naming the
// document of the second occurrence.
func (r *Registry) Reserve(label, path string) error {
	if r.reserved[label] {
		return &DuplicateLabelError{Label: label, Path: path}
	}
	r.reserved[label] = true
	return nil
}

// Synthesize produces and reserves a fresh label of the form
// "a0000000000". The counter is global for the run and skips values a
// document author happened to claim explicitly.
func (r *Registry) Synthesize() string {
	for {
		label := fmt.Sprintf("a%010d", r.counter)
		r.counter++
		if !r.reserved[label] {
			r.reserved[label] = true
			return label
		}
	}
}

// SetOwner records the stub that owns a label. Every label of a
// statement maps to the same canonical stub name.
func (r *Registry) SetOwner(label, stubName string) {
	r.owner[label] = stubName
}

// Resolve returns the canonical stub name owning a label.
func (r *Registry) Resolve(label string) (string, bool) {
	name, ok := r.owner[label]
	return name, ok
}
