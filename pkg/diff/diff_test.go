package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "alpha\nbeta\ngamma\ndelta\n"

func TestParseAndApply_SimpleModify(t *testing.T) {
	d, err := Parse("@@ -2,2 +2,2 @@\n beta\n-gamma\n+GAMMA\n")
	require.NoError(t, err)

	out, err := Apply(base, d)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\nGAMMA\ndelta\n", out)
}

func TestParse_SkipsFileHeaders(t *testing.T) {
	text := "--- a/f.js\n+++ b/f.js\n@@ -1,1 +1,1 @@\n-alpha\n+ALPHA\n"
	d, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, d.Hunks, 1)

	out, err := Apply(base, d)
	require.NoError(t, err)
	assert.Equal(t, "ALPHA\nbeta\ngamma\ndelta\n", out)
}

func TestParse_Invalid(t *testing.T) {
	for name, text := range map[string]string{
		"empty":               "",
		"no hunks":            "just text\n",
		"bad header":          "@@ nonsense @@\n x\n",
		"count mismatch":      "@@ -1,2 +1,1 @@\n-alpha\n+ALPHA\n",
		"unexpected prefix":   "@@ -1,1 +1,1 @@\n*alpha\n",
		"stray newline marker": "@@ -1,1 +1,1 @@\n\\ No newline at end of file\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			assert.ErrorIs(t, err, ErrInvalidDiff)
		})
	}
}

func TestApply_ContextMismatch(t *testing.T) {
	d, err := Parse("@@ -1,1 +1,1 @@\n-something else\n+replacement\n")
	require.NoError(t, err)

	_, err = Apply(base, d)
	assert.ErrorIs(t, err, ErrDoesNotApply)
}

func TestApply_InsertionIntoEmptyFile(t *testing.T) {
	d, err := Parse("@@ -0,0 +1,2 @@\n+first\n+second\n")
	require.NoError(t, err)

	out, err := Apply("", d)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", out)
}

func TestApply_Deletion(t *testing.T) {
	d, err := Parse("@@ -1,2 +1,1 @@\n alpha\n-beta\n")
	require.NoError(t, err)

	out, err := Apply(base, d)
	require.NoError(t, err)
	assert.Equal(t, "alpha\ngamma\ndelta\n", out)
}

func TestApply_MultipleHunksInOrder(t *testing.T) {
	text := "@@ -1,1 +1,1 @@\n-alpha\n+A\n@@ -4,1 +4,1 @@\n-delta\n+D\n"
	d, err := Parse(text)
	require.NoError(t, err)

	out, err := Apply(base, d)
	require.NoError(t, err)
	assert.Equal(t, "A\nbeta\ngamma\nD\n", out)
}

func TestApply_NoTrailingNewline(t *testing.T) {
	d, err := Parse("@@ -4,1 +4,1 @@\n-delta\n+omega\n\\ No newline at end of file\n")
	require.NoError(t, err)

	out, err := Apply(base, d)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\ngamma\nomega", out)
}

func TestInvert_RoundTrip(t *testing.T) {
	texts := []string{
		"@@ -2,2 +2,2 @@\n beta\n-gamma\n+GAMMA\n",
		"@@ -1,1 +1,1 @@\n-alpha\n+A\n@@ -4,1 +4,1 @@\n-delta\n+D\n",
		"@@ -1,2 +1,1 @@\n alpha\n-beta\n",
		"@@ -4,1 +4,2 @@\n delta\n+epsilon\n",
	}
	for _, text := range texts {
		d, err := Parse(text)
		require.NoError(t, err)

		patched, err := Apply(base, d)
		require.NoError(t, err)

		restored, err := Apply(patched, Invert(d))
		require.NoError(t, err)
		assert.Equal(t, base, restored, "inverting %q", text)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	text := "@@ -2,2 +2,2 @@\n beta\n-gamma\n+GAMMA\n"
	d, err := Parse(text)
	require.NoError(t, err)

	formatted := Format(d)
	reparsed, err := Parse(formatted)
	require.NoError(t, err)

	out1, err := Apply(base, d)
	require.NoError(t, err)
	out2, err := Apply(base, reparsed)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}
