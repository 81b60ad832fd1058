// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

var (
	homeRe    = regexp.MustCompile(`\\home\{([^}]+)\}`)
	githubRe  = regexp.MustCompile(`\\github\{([^}]+)\}`)
	dochomeRe = regexp.MustCompile(`\\dochome\{([^}]+)\}`)
)

// ScrapeConfig folds the project config macros of one document into cfg.
// Every document contributes; within and across documents the last
// occurrence in traversal order wins.
func ScrapeConfig(cfg *types.ProjectConfig, text string) {
	if ms := homeRe.FindAllStringSubmatch(text, -1); ms != nil {
		cfg.Home = ms[len(ms)-1][1]
	}
	if ms := githubRe.FindAllStringSubmatch(text, -1); ms != nil {
		cfg.GitHub = ms[len(ms)-1][1]
	}
	if ms := dochomeRe.FindAllStringSubmatch(text, -1); ms != nil {
		cfg.DocHome = ms[len(ms)-1][1]
	}
}

// WriteConfig writes the scraped project config as YAML. Nothing is
// written when no config macro was found anywhere; keys never declared
// are omitted rather than emitted empty.
func WriteConfig(path string, cfg types.ProjectConfig) error {
	if cfg.IsEmpty() {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
