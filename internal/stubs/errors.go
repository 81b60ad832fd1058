// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stubs

import "fmt"

// DuplicateLabelError reports a label declared twice anywhere in the
// project. Labels form a single project-wide namespace, so the second
// occurrence aborts the run.
type DuplicateLabelError struct {
	// Label is the offending label text.
	Label string

	// Path is the document in which the second occurrence appeared.
	Path string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate label %q in %s", e.Label, e.Path)
}

// UnknownLabelError reports a dependency reference that resolves to no
// statement. It is raised only after every statement has been
// registered, so forward references never trip it.
type UnknownLabelError struct {
	// Label is the unresolvable reference.
	Label string

	// Stub is the canonical name of the stub whose reference list holds it.
	Stub string

	// Path is the document the referencing stub came from.
	Path string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q referenced by %s (%s)", e.Label, e.Stub, e.Path)
}
