package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	content, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, content, "# tzmcp Guide")

	content, err = Get(" Validation ")
	require.NoError(t, err)
	assert.Contains(t, content, "# Input Validation")
}

func TestGet_NotFound(t *testing.T) {
	for _, name := range []string{"nonexistent", "../go.mod", "guide/../guide"} {
		_, err := Get(name)
		assert.Error(t, err, name)
	}
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"config", "networks", "scrub", "tools", "validation"}, names)

	for _, n := range names {
		_, err := Get(n)
		assert.NoError(t, err, n)
	}
}
