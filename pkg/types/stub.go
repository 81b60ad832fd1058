// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the serializable records shared between the
// extraction engine, the derived-artifact commands, and the graph store.
package types

// LineRange locates a region of a source document. Both bounds are
// 1-indexed and inclusive.
type LineRange struct {
	// Start is the line on which the region's opening marker appears.
	Start int `json:"lines-start" yaml:"lines-start"`

	// End is the line on which the region's closing marker appears.
	End int `json:"lines-end" yaml:"lines-end"`
}

// Stub is the canonical extracted unit: one statement environment
// (definition, lemma, theorem, ...) together with its associated proof,
// if any. Stubs are keyed in stubs.json by "<stub-path>/<last label>".
// The last label, not the first, is the primary one: when a proof
// carries its own label, that label lands at the end of the list and
// names the combined statement+proof unit.
type Stub struct {
	// Labels lists every label attached to the statement, in declaration
	// order, with any associated proof's labels appended. Never empty:
	// unlabeled statements receive a synthesized label.
	Labels []string `json:"labels" yaml:"labels"`

	// Type is the environment name the statement was declared with.
	Type string `json:"stub-type" yaml:"stub-type"`

	// Path is the document path relative to the blueprint source root.
	Path string `json:"stub-path" yaml:"stub-path"`

	// Spec is the statement environment's own span.
	Spec LineRange `json:"stub-spec" yaml:"stub-spec"`

	// Proof is the associated proof's span, if a proof was attached by
	// adjacency or merged from a back-referenced proof.
	Proof *LineRange `json:"stub-proof,omitempty" yaml:"stub-proof,omitempty"`

	// CodeName is the primary formal-code declaration name.
	CodeName string `json:"code-name,omitempty" yaml:"code-name,omitempty"`

	// CodeNames is the full declaration list, present only when the
	// statement declares more than one name.
	CodeNames []string `json:"code-names,omitempty" yaml:"code-names,omitempty"`

	// SpecOK reports that the statement itself is formalized.
	SpecOK bool `json:"spec-ok" yaml:"spec-ok"`

	// MathlibOK reports that the statement is verified against the
	// standard mathematical library.
	MathlibOK bool `json:"mathlib-ok" yaml:"mathlib-ok"`

	// NotReady marks the statement as not ready to be worked on.
	NotReady bool `json:"not-ready" yaml:"not-ready"`

	// Discussions collects discussion references in order of appearance,
	// duplicates included.
	Discussions []string `json:"discussions,omitempty" yaml:"discussions,omitempty"`

	// SpecDependencies lists what the statement uses. Raw labels during
	// assembly; canonical stub names after resolution.
	SpecDependencies []string `json:"spec-dependencies" yaml:"spec-dependencies"`

	// Proof-side fields mirror the statement-side ones but describe the
	// attached proof. The flag pointers are set only when a proof
	// declares the flag; merges may set one but never clear one, so a
	// flag that went true stays true.

	ProofOK          *bool    `json:"proof-ok,omitempty" yaml:"proof-ok,omitempty"`
	ProofMathlibOK   *bool    `json:"proof-mathlib-ok,omitempty" yaml:"proof-mathlib-ok,omitempty"`
	ProofNotReady    *bool    `json:"proof-not-ready,omitempty" yaml:"proof-not-ready,omitempty"`
	ProofCodeName    string   `json:"proof-code-name,omitempty" yaml:"proof-code-name,omitempty"`
	ProofCodeNames   []string `json:"proof-code-names,omitempty" yaml:"proof-code-names,omitempty"`
	ProofDiscussions []string `json:"proof-discussions,omitempty" yaml:"proof-discussions,omitempty"`

	// ProofDependencies lists what the proof uses. Nil when the stub has
	// no proof data or the proof declared no dependencies.
	ProofDependencies []string `json:"proof-dependencies,omitempty" yaml:"proof-dependencies,omitempty"`
}

// ProjectConfig holds project-level metadata scraped from the blueprint
// sources. Only keys actually declared somewhere in the project are
// written out; when a macro appears in several documents the last
// occurrence in traversal order wins.
type ProjectConfig struct {
	// Home is the project home page URL.
	Home string `json:"home,omitempty" yaml:"home,omitempty"`

	// GitHub is the source repository URL.
	GitHub string `json:"github,omitempty" yaml:"github,omitempty"`

	// DocHome is the generated-documentation URL.
	DocHome string `json:"dochome,omitempty" yaml:"dochome,omitempty"`
}

// IsEmpty reports whether no config macro was found anywhere.
func (c ProjectConfig) IsEmpty() bool {
	return c.Home == "" && c.GitHub == "" && c.DocHome == ""
}
