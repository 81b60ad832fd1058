// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// defaultEnvironments is the statement-environment set used when web.tex
// declares no thms option.
var defaultEnvironments = []string{"definition", "lemma", "proposition", "theorem", "corollary"}

var (
	// usepackageRe captures the option string of \usepackage[...]{blueprint}.
	usepackageRe = regexp.MustCompile(`\\usepackage\s*\[([^\]]*)\]\s*\{blueprint\}`)

	// thmsRe captures the +-joined environment tokens of a thms= option.
	thmsRe = regexp.MustCompile(`thms\s*=\s*([a-zA-Z+_]+)`)
)

// DefaultEnvironments returns a copy of the default statement set.
func DefaultEnvironments() []string {
	return append([]string(nil), defaultEnvironments...)
}

// ParseEnvOption extracts the statement-environment names from the thms
// option of the blueprint package inclusion, e.g.
// \usepackage[thms=dfn+lem+prop+thm+cor]{blueprint}. Without the option
// (or without the inclusion at all) the default set applies.
func ParseEnvOption(webTexContent string) []string {
	m := usepackageRe.FindStringSubmatch(webTexContent)
	if m == nil {
		return DefaultEnvironments()
	}
	tm := thmsRe.FindStringSubmatch(m[1])
	if tm == nil {
		return DefaultEnvironments()
	}

	var envs []string
	for _, tok := range strings.Split(tm[1], "+") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			envs = append(envs, tok)
		}
	}
	if len(envs) == 0 {
		return DefaultEnvironments()
	}
	return envs
}

// LoadEnvironments reads web.tex from the source directory and returns
// the configured statement-environment names. A missing web.tex means
// the defaults.
func LoadEnvironments(srcDir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(srcDir, webTex))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultEnvironments(), nil
		}
		return nil, err
	}
	return ParseEnvOption(string(data)), nil
}
