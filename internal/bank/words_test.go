package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/madlib/pkg/types"
)

func TestImportEntries(t *testing.T) {
	b := attachTestBank(t)

	n, err := b.ImportEntries([]types.WordEntry{
		{Word: "dog", Type: "noun"},
		{Word: "quickly", Type: "adverb"},
		{Word: "cat", Type: "noun"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dict, err := b.Dictionary()
	require.NoError(t, err)
	assert.Equal(t, types.Dictionary{
		"noun":   {"dog", "cat"},
		"adverb": {"quickly"},
	}, dict)
}

func TestImportEntriesAppends(t *testing.T) {
	b := attachTestBank(t)

	_, err := b.ImportEntries([]types.WordEntry{{Word: "dog", Type: "noun"}})
	require.NoError(t, err)
	_, err = b.ImportEntries([]types.WordEntry{{Word: "cat", Type: "noun"}})
	require.NoError(t, err)

	dict, err := b.Dictionary()
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat"}, dict["noun"],
		"second import appends after the first in order")
}

func TestImportEntriesEmpty(t *testing.T) {
	b := attachTestBank(t)

	n, err := b.ImportEntries(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	dict, err := b.Dictionary()
	require.NoError(t, err)
	assert.Empty(t, dict)
}

func TestTypes(t *testing.T) {
	b := attachTestBank(t)

	_, err := b.ImportEntries([]types.WordEntry{
		{Word: "dog", Type: "noun"},
		{Word: "cat", Type: "noun"},
		{Word: "red", Type: "color"},
	})
	require.NoError(t, err)

	counts, err := b.Types()
	require.NoError(t, err)
	assert.Equal(t, []TypeCount{
		{Type: "color", Count: 1},
		{Type: "noun", Count: 2},
	}, counts)
}

func TestTypesEmptyBank(t *testing.T) {
	b := attachTestBank(t)

	counts, err := b.Types()
	require.NoError(t, err)
	assert.Empty(t, counts)
}
