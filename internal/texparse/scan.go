// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"sort"
	"strings"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// Block is one occurrence of a configured environment in a document.
// Text is the inner content between the begin and end markers; offsets
// index into the comment-stripped document text.
type Block struct {
	// Type is the environment name that opened the block.
	Type string

	// Path is the document path relative to the blueprint source root.
	Path string

	// Text is the raw inner content, comments already stripped.
	Text string

	// Lines is the block's span, begin marker line through end marker line.
	Lines types.LineRange

	// StartOffset and EndOffset delimit the full \begin...\end region,
	// EndOffset pointing just past the closing marker.
	StartOffset int
	EndOffset   int
}

// beginMatch describes one \begin{name} marker found in text.
type beginMatch struct {
	start     int    // offset of the backslash
	name      string // environment name
	afterOpen int    // offset just past the closing brace
}

const beginToken = `\begin{`

// findBegin locates the next \begin{name} marker at or after from.
// The name must be non-empty and brace-free.
func findBegin(text string, from int) (beginMatch, bool) {
	for from < len(text) {
		i := strings.Index(text[from:], beginToken)
		if i < 0 {
			return beginMatch{}, false
		}
		start := from + i
		nameStart := start + len(beginToken)
		j := strings.IndexByte(text[nameStart:], '}')
		if j < 0 {
			return beginMatch{}, false
		}
		name := text[nameStart : nameStart+j]
		if name != "" {
			return beginMatch{start: start, name: name, afterOpen: nameStart + j + 1}, true
		}
		from = nameStart + j + 1
	}
	return beginMatch{}, false
}

// findMatchingEnd returns the offset just past the \end{name} that closes
// an environment opened before from, tracking nesting depth for the same
// name. Returns false when the environment never closes.
func findMatchingEnd(text, name string, from int) (int, bool) {
	open := beginToken + name + "}"
	closing := `\end{` + name + "}"

	depth := 1
	pos := from
	for pos < len(text) {
		nextOpen := strings.Index(text[pos:], open)
		nextClose := strings.Index(text[pos:], closing)
		if nextClose < 0 {
			return 0, false
		}
		if nextOpen >= 0 && nextOpen < nextClose {
			depth++
			pos += nextOpen + len(open)
			continue
		}
		depth--
		pos += nextClose + len(closing)
		if depth == 0 {
			return pos, true
		}
	}
	return 0, false
}

// MaskNested deletes every nested \begin{X}...\end{X} region from text,
// for any X. Label extraction runs over the masked text so that only
// top-level label declarations count. An opener with no matching closer
// is kept verbatim and scanning resumes right after it.
func MaskNested(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pos := 0
	for pos < len(text) {
		m, ok := findBegin(text, pos)
		if !ok {
			b.WriteString(text[pos:])
			break
		}
		b.WriteString(text[pos:m.start])

		end, ok := findMatchingEnd(text, m.name, m.afterOpen)
		if !ok {
			b.WriteString(text[m.start:m.afterOpen])
			pos = m.afterOpen
			continue
		}
		pos = end
	}

	return b.String()
}

// lineAt converts a byte offset into a 1-indexed line number by counting
// the newlines that precede it.
func lineAt(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}

// scanType collects every non-overlapping \begin{envType}...\end{envType}
// occurrence. An opener pairs with the first closer of the same name that
// follows it; the next search resumes past that closer.
func scanType(text, envType, path string) []Block {
	open := beginToken + envType + "}"
	closing := `\end{` + envType + "}"

	var blocks []Block
	pos := 0
	for {
		i := strings.Index(text[pos:], open)
		if i < 0 {
			break
		}
		start := pos + i
		innerStart := start + len(open)
		j := strings.Index(text[innerStart:], closing)
		if j < 0 {
			break
		}
		end := innerStart + j + len(closing)
		blocks = append(blocks, Block{
			Type: envType,
			Path: path,
			Text: text[innerStart : innerStart+j],
			Lines: types.LineRange{
				Start: lineAt(text, start),
				End:   lineAt(text, end-1),
			},
			StartOffset: start,
			EndOffset:   end,
		})
		pos = end
	}
	return blocks
}

// ScanEnvironments finds every occurrence of the configured environment
// types in a comment-stripped document and returns them in document
// order. Types are matched independently of each other: when one
// configured type encloses another, both occurrences are reported, and
// the merged list is ordered by start offset.
func ScanEnvironments(text string, envTypes []string, path string) []Block {
	var blocks []Block
	for _, envType := range envTypes {
		blocks = append(blocks, scanType(text, envType, path)...)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartOffset < blocks[j].StartOffset
	})
	return blocks
}
