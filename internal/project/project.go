// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project knows the on-disk layout of a blueprint project:
// where the LaTeX sources live, which documents count as content, and
// the project-level configuration declared inside them.
// Implements: docs/ARCHITECTURE § Project Layout.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

const (
	// SrcDir is the source subdirectory, relative to the project root.
	SrcDir = "blueprint/src"

	// OutputDir is where derived artifacts are written.
	OutputDir = ".verilib"

	// webTex declares package options and project config; printTex is the
	// print variant. Neither is a content document.
	webTex   = "web.tex"
	printTex = "print.tex"

	// ignoreFile lists additional documents to exclude, gitignore syntax.
	ignoreFile = ".probeignore"

	texExt = ".tex"
)

// Document is one content document of the project.
type Document struct {
	// RelPath is the slash-separated path relative to blueprint/src.
	// It prefixes every canonical stub name from this document.
	RelPath string

	// AbsPath is the filesystem path for reading.
	AbsPath string
}

// SourceDir returns the blueprint source directory for a project root.
// A missing directory is a structural error: the whole run aborts.
func SourceDir(projectDir string) (string, error) {
	dir := filepath.Join(projectDir, filepath.FromSlash(SrcDir))
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s directory not found at %s", SrcDir, dir)
	}
	return dir, nil
}

// ListDocuments walks the source directory and returns every content
// document in deterministic (lexical) order. web.tex and print.tex are
// reserved and skipped, as is anything matched by .probeignore.
func ListDocuments(srcDir string) ([]Document, error) {
	gi := loadIgnore(srcDir)

	var docs []Document
	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), texExt) {
			return nil
		}
		if d.Name() == webTex || d.Name() == printTex {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		docs = append(docs, Document{RelPath: rel, AbsPath: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", srcDir, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs, nil
}

// loadIgnore compiles blueprint/src/.probeignore. Absence is normal.
func loadIgnore(srcDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(srcDir, ignoreFile))
	if err != nil {
		return nil
	}
	return gi
}
