// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package atoms

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-probe/pkg/types"
)

func TestFlatten(t *testing.T) {
	all := map[string]types.Stub{
		"chapter/a.tex/main_thm": {
			Labels:            []string{"main_thm"},
			Type:              "theorem",
			Path:              "chapter/a.tex",
			Spec:              types.LineRange{Start: 2, End: 4},
			SpecDependencies:  []string{"b.tex/helper"},
			ProofDependencies: []string{"b.tex/other"},
		},
		"b.tex/helper": {
			Labels:           []string{"helper"},
			Type:             "lemma",
			Path:             "b.tex",
			Spec:             types.LineRange{Start: 1, End: 3},
			SpecDependencies: []string{},
		},
	}

	atoms := Flatten(all)

	require.Len(t, atoms, 2)
	require.Contains(t, atoms, "main_thm")
	require.Contains(t, atoms, "helper")

	main := atoms["main_thm"]
	assert.Equal(t, "main_thm", main.DisplayName)
	assert.Equal(t, "chapter/a.tex", main.StubPath)
	assert.Equal(t, types.LineRange{Start: 2, End: 4}, main.StubText)
	// Spec deps first, proof deps after.
	assert.Equal(t, []string{"b.tex/helper", "b.tex/other"}, main.Dependencies)

	assert.Equal(t, []string{}, atoms["helper"].Dependencies)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "atoms.json")
	atoms := map[string]Atom{
		"t1": {
			DisplayName:  "t1",
			Dependencies: []string{"helper"},
			StubPath:     "a.tex",
			StubText:     types.LineRange{Start: 1, End: 3},
		},
	}

	require.NoError(t, Write(path, atoms))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded map[string]Atom
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, atoms, loaded)

	for _, field := range []string{`"display-name"`, `"dependencies"`, `"stub-path"`, `"stub-text"`} {
		assert.Contains(t, string(data), field)
	}
}
