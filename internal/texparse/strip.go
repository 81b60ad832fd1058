// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texparse recognizes annotated environments in blueprint LaTeX
// sources. It is the parse phase of the pipeline: pure functions over
// document text, no shared state, one document at a time.
// Implements: docs/ARCHITECTURE § Extraction.
package texparse

import "strings"

// StripComments removes %-initiated line comments from text. An escape
// pair (backslash followed by any character) is copied verbatim, so \%
// survives. Newlines are always preserved: the output has exactly the
// same line count as the input, which keeps every line number computed
// downstream valid against the original file.
func StripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			b.WriteRune(runes[i])
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
		case '%':
			// Discard up to, but not including, the next newline.
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
		default:
			b.WriteRune(runes[i])
		}
	}

	return b.String()
}
