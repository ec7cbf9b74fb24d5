package sandbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteScratch_WritesSnapshot(t *testing.T) {
	root, err := writeScratch([]virtualFile{
		{Path: "src/hook.js", Content: "// hook"},
		{Path: "src/lib/util.js", Content: "// util"},
		{Path: "package.json", Content: "{}"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })

	data, err := os.ReadFile(filepath.Join(root, "src", "hook.js"))
	require.NoError(t, err)
	assert.Equal(t, "// hook", string(data))

	data, err = os.ReadFile(filepath.Join(root, "src", "lib", "util.js"))
	require.NoError(t, err)
	assert.Equal(t, "// util", string(data))
}

func TestWriteScratch_RejectsEscapingPaths(t *testing.T) {
	for _, path := range []string{
		"../outside.js",
		"src/../../outside.js",
	} {
		t.Run(path, func(t *testing.T) {
			_, err := writeScratch([]virtualFile{{Path: path, Content: "x"}})
			require.ErrorIs(t, err, ErrPathEscape)
		})
	}
}

func TestWriteScratch_EmptySnapshot(t *testing.T) {
	root, err := writeScratch(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
