package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/madlib/pkg/types"
)

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "words.json",
		`[{"word":"dog","type":"noun"},{"word":"quickly","type":"adverb"}]`)
	tplPath := writeFile(t, dir, "story.txt",
		"The [noun] ran [adverb].\nJust plain text.\nI will [verb] today.\n")
	outPath := filepath.Join(dir, "out.txt")

	require.NoError(t, runGenerate(dictPath, tplPath, outPath))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "The dog ran quickly.\nJust plain text.\nI will XXX today.\n", string(out))
}

func TestRunGenerateMissingDictionary(t *testing.T) {
	dir := t.TempDir()
	tplPath := writeFile(t, dir, "story.txt", "hello\n")
	outPath := filepath.Join(dir, "out.txt")

	err := runGenerate(filepath.Join(dir, "absent.json"), tplPath, outPath)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, exitNotFound, exitCodeFor(err))
	assert.NoFileExists(t, outPath)
}

func TestRunGenerateMalformedDictionary(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "words.json", `[{"word":"dog"}]`)
	tplPath := writeFile(t, dir, "story.txt", "The [noun].\n")
	outPath := filepath.Join(dir, "out.txt")

	err := runGenerate(dictPath, tplPath, outPath)

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMissingType)
	assert.Equal(t, exitParse, exitCodeFor(err))
	assert.NoFileExists(t, outPath, "parse failure must not produce an output file")
}

func TestRunGenerateMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	dictPath := writeFile(t, dir, "words.json", `[{"word":"dog","type":"noun"}]`)
	outPath := filepath.Join(dir, "out.txt")

	err := runGenerate(dictPath, filepath.Join(dir, "absent.txt"), outPath)

	require.Error(t, err)
	assert.Equal(t, exitNotFound, exitCodeFor(err))
	assert.NoFileExists(t, outPath)
}
