// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"regexp"
	"strings"
)

// Annotation macro patterns. Each captures a single brace-delimited
// argument; the bare flag macros are matched by substring presence.
var (
	labelRe      = regexp.MustCompile(`\\label\{([^}]+)\}`)
	leanRe       = regexp.MustCompile(`\\lean\{([^}]+)\}`)
	usesRe       = regexp.MustCompile(`\\uses\{([^}]+)\}`)
	provesRe     = regexp.MustCompile(`\\proves\{([^}]+)\}`)
	discussionRe = regexp.MustCompile(`\\discussion\{([^}]+)\}`)
)

// Annotations is everything the macro language declares inside one
// environment body. Every extractor tolerates absence: missing macros
// yield empty slices and false flags.
type Annotations struct {
	// Labels are the top-level \label arguments in declaration order.
	Labels []string

	// CodeNames are the comma-separated \lean arguments; the first entry
	// is the primary declaration name.
	CodeNames []string

	// SpecOK, MathlibOK, and NotReady report the bare flag macros
	// \leanok, \mathlibok, and \notready.
	SpecOK    bool
	MathlibOK bool
	NotReady  bool

	// Discussions are the \discussion arguments, one per occurrence,
	// in order and undeduplicated.
	Discussions []string

	// Uses are the dependency labels from \uses.
	Uses []string

	// Proves are the back-reference target labels from \proves.
	Proves []string
}

// ParseAnnotations runs every extractor over one environment body.
// Labels are taken from the nested-environment-masked text; all other
// macros are matched against the full body, so a flag or reference that
// happens to sit inside a nested environment still counts.
func ParseAnnotations(text string) Annotations {
	return Annotations{
		Labels:      ExtractLabels(text),
		CodeNames:   ExtractCodeNames(text),
		SpecOK:      strings.Contains(text, `\leanok`),
		MathlibOK:   strings.Contains(text, `\mathlibok`),
		NotReady:    strings.Contains(text, `\notready`),
		Discussions: ExtractDiscussions(text),
		Uses:        splitList(firstCapture(usesRe, text)),
		Proves:      splitList(firstCapture(provesRe, text)),
	}
}

// ExtractLabels returns the top-level \label arguments in order of
// appearance. Labels declared inside nested environments never appear.
func ExtractLabels(text string) []string {
	var labels []string
	for _, m := range labelRe.FindAllStringSubmatch(MaskNested(text), -1) {
		labels = append(labels, m[1])
	}
	return labels
}

// ExtractCodeNames returns the comma-separated names from the first
// \lean occurrence, trimmed, empty entries dropped.
func ExtractCodeNames(text string) []string {
	return splitList(firstCapture(leanRe, text))
}

// ExtractDiscussions returns every \discussion argument in order.
func ExtractDiscussions(text string) []string {
	var refs []string
	for _, m := range discussionRe.FindAllStringSubmatch(text, -1) {
		refs = append(refs, strings.TrimSpace(m[1]))
	}
	return refs
}

// firstCapture returns the first capture group of the first match, or "".
func firstCapture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// splitList splits a comma-separated macro argument into trimmed,
// non-empty entries.
func splitList(arg string) []string {
	if arg == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
