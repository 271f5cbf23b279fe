package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotstrap/dotstrap/internal/link"
)

func testEntries() []link.Entry {
	return []link.Entry{
		{Key: ".zshrc"},
		{Key: ".gitconfig"},
		{Key: ".vimrc"},
	}
}

func TestResolveKeysAll(t *testing.T) {
	entries := testEntries()

	got, err := resolveKeys(entries, nil, true)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestResolveKeysSelection(t *testing.T) {
	got, err := resolveKeys(testEntries(), []string{".vimrc", ".zshrc"}, false)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Argument order wins over registry order.
	assert.Equal(t, ".vimrc", got[0].Key)
	assert.Equal(t, ".zshrc", got[1].Key)
}

func TestResolveKeysDeduplicates(t *testing.T) {
	got, err := resolveKeys(testEntries(), []string{".zshrc", ".zshrc", " .zshrc "}, false)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestResolveKeysUnknown(t *testing.T) {
	_, err := resolveKeys(testEntries(), []string{".zshrc", ".bashrc", ".profile"}, false)
	require.Error(t, err)
	assert.Equal(t, "unknown target(s): .bashrc, .profile (use 'list' to see options)", err.Error())
}
