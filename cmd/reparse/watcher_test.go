package main

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/config"
	"github.com/dhamidi/reparse/java/incremental"
)

func TestFileWatcherReparsesIncrementally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	writeFile(t, path, members)
	writeFile(t, filepath.Join(dir, ".git", "B.java"), "class B { }")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not java")

	var out bytes.Buffer
	w := newFileWatcher(dir, config.Default().Check.Matches, &out)
	w.verify = true

	dirs, err := w.scan()
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, dirs)
	assert.Equal(t, path+": parsed, 0 diagnostics\n", out.String())
	assert.Len(t, w.trees, 1)

	out.Reset()
	writeFile(t, path, strings.Replace(members, "return 2;", "return 2 + 2;", 1))
	require.NoError(t, w.update(path))
	assert.Contains(t, out.String(), path+": reparsed after")
	assert.Equal(t, 2, w.trees[path].Stats.ReusedNodes)
	assert.Equal(t, w.pool.Created(), w.pool.Idle())

	out.Reset()
	require.NoError(t, w.update(path))
	assert.Empty(t, out.String(), "unchanged content is not reported")

	w.remove(path)
	assert.Equal(t, path+": removed\n", out.String())
	assert.Empty(t, w.trees)
}

func TestCheckText(t *testing.T) {
	opts := config.Default().Check
	opts.Edits = 200
	rng := rand.New(rand.NewPCG(3, 4))
	pool := incremental.NewCursorPool()

	stats, err := checkText("A.java", members+"class B extends A { void m() { if (a >> 1 >= b) x = y / 2; } }\n", opts, rng, pool)
	require.NoError(t, err)
	assert.Positive(t, stats.ScannedTokens)
	assert.Equal(t, pool.Created(), pool.Idle())
}
