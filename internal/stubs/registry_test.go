// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stubs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReserveDuplicate(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Reserve("thm1", "a.tex"))
	err := reg.Reserve("thm1", "b.tex")
	require.Error(t, err)

	var dup *DuplicateLabelError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "thm1", dup.Label)
	assert.Equal(t, "b.tex", dup.Path)
}

func TestRegistrySynthesizeSequence(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, "a0000000000", reg.Synthesize())
	assert.Equal(t, "a0000000001", reg.Synthesize())
}

func TestRegistrySynthesizeSkipsReserved(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Reserve("a0000000000", "a.tex"))

	assert.Equal(t, "a0000000001", reg.Synthesize())

	// Synthesized labels are themselves reserved.
	err := reg.Reserve("a0000000001", "a.tex")
	assert.Error(t, err)
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Reserve("lem", "a.tex"))
	reg.SetOwner("lem", "a.tex/lem")

	name, ok := reg.Resolve("lem")
	require.True(t, ok)
	assert.Equal(t, "a.tex/lem", name)

	_, ok = reg.Resolve("missing")
	assert.False(t, ok)
}
