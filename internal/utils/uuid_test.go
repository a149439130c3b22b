package utils

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_FileName(t *testing.T) {
	g := NewUUIDGenerator()

	name := g.FileName(".png")
	assert.Equal(t, ".png", filepath.Ext(name))

	_, err := uuid.Parse(name[:len(name)-len(".png")])
	assert.NoError(t, err)

	assert.Empty(t, filepath.Ext(g.FileName("")))
}
