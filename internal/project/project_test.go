// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

// newProject lays out blueprint/src under a temp dir and returns both.
func newProject(t *testing.T) (projectDir, srcDir string) {
	t.Helper()
	projectDir = t.TempDir()
	srcDir = filepath.Join(projectDir, "blueprint", "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	return projectDir, srcDir
}

func writeDoc(t *testing.T, srcDir, rel, content string) {
	t.Helper()
	path := filepath.Join(srcDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSourceDir(t *testing.T) {
	projectDir, srcDir := newProject(t)

	got, err := SourceDir(projectDir)
	require.NoError(t, err)
	assert.Equal(t, srcDir, got)

	_, err = SourceDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blueprint/src")
}

func TestListDocuments(t *testing.T) {
	_, srcDir := newProject(t)
	writeDoc(t, srcDir, "chapter2.tex", "")
	writeDoc(t, srcDir, "chapter1.tex", "")
	writeDoc(t, srcDir, "sub/section.tex", "")
	writeDoc(t, srcDir, "web.tex", "")
	writeDoc(t, srcDir, "print.tex", "")
	writeDoc(t, srcDir, "notes.txt", "")

	docs, err := ListDocuments(srcDir)
	require.NoError(t, err)

	var rels []string
	for _, d := range docs {
		rels = append(rels, d.RelPath)
	}
	assert.Equal(t, []string{"chapter1.tex", "chapter2.tex", "sub/section.tex"}, rels)
}

func TestListDocumentsHonorsIgnoreFile(t *testing.T) {
	_, srcDir := newProject(t)
	writeDoc(t, srcDir, "keep.tex", "")
	writeDoc(t, srcDir, "draft.tex", "")
	writeDoc(t, srcDir, "scratch/wip.tex", "")
	writeDoc(t, srcDir, ".probeignore", "draft.tex\nscratch/\n")

	docs, err := ListDocuments(srcDir)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "keep.tex", docs[0].RelPath)
}

func TestParseEnvOption(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "no inclusion falls back to defaults",
			in:   `\documentclass{article}`,
			want: []string{"definition", "lemma", "proposition", "theorem", "corollary"},
		},
		{
			name: "inclusion without thms falls back to defaults",
			in:   `\usepackage[showmore]{blueprint}`,
			want: []string{"definition", "lemma", "proposition", "theorem", "corollary"},
		},
		{
			name: "thms option overrides",
			in:   `\usepackage[thms=dfn+lem+prop+thm+cor]{blueprint}`,
			want: []string{"dfn", "lem", "prop", "thm", "cor"},
		},
		{
			name: "single environment",
			in:   `\usepackage[thms=theorem]{blueprint}`,
			want: []string{"theorem"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEnvOption(tt.in))
		})
	}
}

func TestLoadEnvironments(t *testing.T) {
	_, srcDir := newProject(t)

	// Missing web.tex means the defaults.
	envs, err := LoadEnvironments(srcDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironments(), envs)

	writeDoc(t, srcDir, "web.tex", `\usepackage[thms=thm+lem]{blueprint}`)
	envs, err = LoadEnvironments(srcDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"thm", "lem"}, envs)
}

func TestScrapeConfigLastOccurrenceWins(t *testing.T) {
	var cfg types.ProjectConfig

	ScrapeConfig(&cfg, `\home{https://old.example.com}\github{https://github.com/a/b}`)
	ScrapeConfig(&cfg, `\home{https://new.example.com}\dochome{https://docs.example.com}`)

	assert.Equal(t, "https://new.example.com", cfg.Home)
	assert.Equal(t, "https://github.com/a/b", cfg.GitHub)
	assert.Equal(t, "https://docs.example.com", cfg.DocHome)
}

func TestWriteConfigSkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blueprint.yaml")

	require.NoError(t, WriteConfig(path, types.ProjectConfig{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blueprint.yaml")
	cfg := types.ProjectConfig{
		Home:   "https://example.com",
		GitHub: "https://github.com/a/b",
	}

	require.NoError(t, WriteConfig(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got types.ProjectConfig
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, cfg, got)
	// Keys never declared are omitted, not emitted empty.
	assert.NotContains(t, string(data), "dochome")
}
