package service

import (
	"testing"

	perr "findstrings/internal/platform/errors"
	kit "findstrings/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTable(t *testing.T) {
	tb, err := ResolveTable("", "")
	require.NoError(t, err)
	assert.Equal(t, "ascii", tb.Name())

	tb, err = ResolveTable("", "cp437")
	require.NoError(t, err)
	assert.Equal(t, "cp437", tb.Name())

	p := kit.WriteFile(t, "t.txt", []byte("41 A\n"))
	tb, err = ResolveTable(p, "")
	require.NoError(t, err)
	assert.Equal(t, 1, tb.Len())

	_, err = ResolveTable(p, "cp437")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUsage))
}
