package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath_Valid(t *testing.T) {
	for _, path := range []string{
		"suiteql/report.sql",
		"src/FileCabinet/SuiteScripts/payout_recon.js",
		"README.md",
		"folder name/with spaces.txt",
		"a-b_c.d/e",
	} {
		assert.NoError(t, ValidateFilePath(path), path)
	}
}

func TestValidateFilePath_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"absolute", "/etc/passwd"},
		{"backslash prefix", `\windows\system32`},
		{"parent traversal", "../outside.txt"},
		{"embedded traversal", "src/../../outside.txt"},
		{"dot segment", "src/./file.js"},
		{"empty segment", "src//file.js"},
		{"disallowed character", "src/file;rm.js"},
		{"null byte", "src/file\x00.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateFilePath(tt.path))
		})
	}
}

func TestValidateFilePath_LengthBoundary(t *testing.T) {
	// 512 bytes is allowed, 513 is not
	base := strings.Repeat("a", MaxPathBytes-2) + "/b"
	require.Len(t, base, MaxPathBytes)
	assert.NoError(t, ValidateFilePath(base))
	assert.Error(t, ValidateFilePath(base+"b"))
}

func TestValidateFilePath_DepthBoundary(t *testing.T) {
	// 20 segments is allowed, 21 is not
	segments := make([]string, MaxPathSegments)
	for i := range segments {
		segments[i] = "d"
	}
	ok := strings.Join(segments, "/")
	assert.NoError(t, ValidateFilePath(ok))
	assert.Error(t, ValidateFilePath(ok+"/d"))
}

func TestIdentity_Validate(t *testing.T) {
	assert.NoError(t, Identity{TenantID: "t1"}.Validate())
	assert.ErrorIs(t, Identity{ActorID: "u1"}.Validate(), ErrMissingTenant)
}
