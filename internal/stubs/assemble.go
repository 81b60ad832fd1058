// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stubs

import (
	"fmt"
	"io"

	"github.com/pdiddy/blueprint-probe/internal/texparse"
	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// Assemble turns the combined parse results of every document into the
// final stub map, keyed by "<path>/<last label>". Statements must be in
// traversal order across documents; the order decides which duplicate
// fires first and which synthesized label a statement receives, but not
// the accepted graph itself.
//
// Three sequential passes over a single registry:
//  1. reserve every label (synthesizing one for unlabeled statements),
//     build the stubs, record label ownership;
//  2. merge back-referenced standalone proofs into their targets —
//     unresolvable targets are warned about on w and skipped;
//  3. rewrite both reference lists of every stub from raw labels to
//     canonical stub names, failing on any dangling reference.
//
// On error the returned map is nil; callers must not write partial output.
func Assemble(statements []texparse.Statement, proofs []texparse.StandaloneProof, w io.Writer) (map[string]*types.Stub, error) {
	reg := NewRegistry()
	all := make(map[string]*types.Stub, len(statements))
	order := make([]string, 0, len(statements))

	// Pass 1: register and build.
	for _, stmt := range statements {
		labels := stmt.Ann.Labels
		for _, label := range labels {
			if err := reg.Reserve(label, stmt.Path); err != nil {
				return nil, err
			}
		}
		if len(labels) == 0 {
			labels = []string{reg.Synthesize()}
		}

		name := stmt.Path + "/" + labels[len(labels)-1]
		all[name] = buildStub(stmt, labels)
		order = append(order, name)

		for _, label := range labels {
			reg.SetOwner(label, name)
		}
	}

	// Pass 2: merge standalone proofs.
	merged := make(map[string]bool)
	for _, proof := range proofs {
		for _, target := range proof.Ann.Proves {
			name, ok := reg.Resolve(target)
			if !ok {
				fmt.Fprintf(w, "warning: proof in %s targets unknown label %q, skipping\n", proof.Path, target)
				continue
			}
			if merged[name] {
				fmt.Fprintf(w, "warning: multiple proofs target %s, keeping the last\n", name)
			}
			merged[name] = true
			mergeProof(all[name], proof)
		}
	}

	// Pass 3: resolve references.
	for _, name := range order {
		stub := all[name]
		resolved, err := resolveRefs(reg, stub.SpecDependencies, name, stub.Path)
		if err != nil {
			return nil, err
		}
		stub.SpecDependencies = resolved

		if stub.ProofDependencies != nil {
			resolved, err := resolveRefs(reg, stub.ProofDependencies, name, stub.Path)
			if err != nil {
				return nil, err
			}
			stub.ProofDependencies = resolved
		}
	}

	return all, nil
}

// buildStub constructs one stub from a parsed statement. labels is the
// registry-validated label list, never empty.
func buildStub(stmt texparse.Statement, labels []string) *types.Stub {
	stub := &types.Stub{
		Labels:           labels,
		Type:             stmt.Block.Type,
		Path:             stmt.Path,
		Spec:             stmt.Lines,
		SpecOK:           stmt.Ann.SpecOK,
		MathlibOK:        stmt.Ann.MathlibOK,
		NotReady:         stmt.Ann.NotReady,
		Discussions:      stmt.Ann.Discussions,
		SpecDependencies: stmt.Ann.Uses,
	}
	if stub.SpecDependencies == nil {
		stub.SpecDependencies = []string{}
	}
	stub.CodeName, stub.CodeNames = splitCodeNames(stmt.Ann.CodeNames)

	if stmt.Proof != nil {
		lines := stmt.Proof.Lines
		stub.Proof = &lines
		applyProofAnnotations(stub, stmt.Proof.Ann)
	}

	return stub
}

// mergeProof folds one standalone proof into its target stub. The span,
// code-names, discussions, and dependency list are overwritten; boolean
// flags only ever go from unset to true.
func mergeProof(stub *types.Stub, proof texparse.StandaloneProof) {
	lines := proof.Lines
	stub.Proof = &lines
	applyProofAnnotations(stub, proof.Ann)
}

// applyProofAnnotations writes proof-side fields from a proof body's
// annotations. Flag pointers are set only when the flag is declared, so
// an earlier true is never reset by a proof that lacks the macro.
func applyProofAnnotations(stub *types.Stub, ann texparse.Annotations) {
	if ann.SpecOK {
		stub.ProofOK = boolPtr(true)
	}
	if ann.MathlibOK {
		stub.ProofMathlibOK = boolPtr(true)
	}
	if ann.NotReady {
		stub.ProofNotReady = boolPtr(true)
	}
	stub.ProofCodeName, stub.ProofCodeNames = splitCodeNames(ann.CodeNames)
	stub.ProofDiscussions = ann.Discussions
	if len(ann.Uses) > 0 {
		stub.ProofDependencies = ann.Uses
	} else {
		stub.ProofDependencies = nil
	}
}

// splitCodeNames returns the primary code-name and, only when the
// declaration lists several, the full list.
func splitCodeNames(names []string) (string, []string) {
	if len(names) == 0 {
		return "", nil
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return names[0], names
}

// resolveRefs rewrites a reference list from raw labels to canonical
// stub names.
func resolveRefs(reg *Registry, refs []string, stubName, path string) ([]string, error) {
	resolved := make([]string, len(refs))
	for i, ref := range refs {
		name, ok := reg.Resolve(ref)
		if !ok {
			return nil, &UnknownLabelError{Label: ref, Stub: stubName, Path: path}
		}
		resolved[i] = name
	}
	return resolved, nil
}

func boolPtr(b bool) *bool { return &b }
