// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"strings"
	"unicode"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// proofEnv is the environment name that carries proofs. It is always
// recognized, independent of the configured statement types.
const proofEnv = "proof"

// Statement is one parsed statement environment, possibly with an
// adjacently associated proof.
type Statement struct {
	Block

	// Ann holds the statement's own annotations. When a proof is
	// associated, the proof's labels are appended to Ann.Labels.
	Ann Annotations

	// Proof holds the associated proof's span and annotations, nil when
	// no proof was attached.
	Proof *ProofPart
}

// ProofPart is the proof-side payload of a statement.
type ProofPart struct {
	Lines types.LineRange
	Ann   Annotations
}

// StandaloneProof is a proof environment that names its targets with a
// back-reference instead of relying on position. It is never attached
// during the parse phase; the assembler merges it into its targets.
type StandaloneProof struct {
	Path  string
	Lines types.LineRange
	Ann   Annotations
}

// ParseDocument parses one document into statements and standalone
// proofs. It touches no shared state; documents can be parsed in any
// order, or concurrently, before assembly.
func ParseDocument(raw, relPath string, envTypes []string) ([]Statement, []StandaloneProof) {
	text := StripComments(raw)

	var statements []Statement
	for _, block := range ScanEnvironments(text, envTypes, relPath) {
		stmt := Statement{Block: block, Ann: ParseAnnotations(block.Text)}

		if proof, ok := followingProof(text, block.EndOffset); ok {
			stmt.Ann.Labels = append(stmt.Ann.Labels, proof.Ann.Labels...)
			stmt.Proof = &proof
		}

		statements = append(statements, stmt)
	}

	var standalone []StandaloneProof
	for _, block := range scanType(text, proofEnv, relPath) {
		ann := ParseAnnotations(block.Text)
		if len(ann.Proves) > 0 {
			standalone = append(standalone, StandaloneProof{
				Path:  relPath,
				Lines: block.Lines,
				Ann:   ann,
			})
		}
	}

	return statements, standalone
}

// followingProof looks for a proof environment that starts right after
// offset, with nothing but whitespace in between. A proof that declares
// a back-reference is never associated by adjacency, even when it sits
// immediately below the statement; it belongs to the standalone scan.
func followingProof(text string, offset int) (ProofPart, bool) {
	pos := offset
	for pos < len(text) && unicode.IsSpace(rune(text[pos])) {
		pos++
	}

	open := beginToken + proofEnv + "}"
	if !strings.HasPrefix(text[pos:], open) {
		return ProofPart{}, false
	}

	innerStart := pos + len(open)
	closing := `\end{` + proofEnv + "}"
	j := strings.Index(text[innerStart:], closing)
	if j < 0 {
		return ProofPart{}, false
	}
	end := innerStart + j + len(closing)

	ann := ParseAnnotations(text[innerStart : innerStart+j])
	if len(ann.Proves) > 0 {
		return ProofPart{}, false
	}

	return ProofPart{
		Lines: types.LineRange{
			Start: lineAt(text, pos),
			End:   lineAt(text, end-1),
		},
		Ann: ann,
	}, true
}
