package models

import (
	"fmt"
	"strings"
)

// Workspace file path invariants. Paths are always relative, bounded, and
// drawn from a restricted character set so they can never escape a
// workspace root or a sandbox scratch directory.
const (
	MaxPathBytes    = 512
	MaxPathSegments = 20
)

// ValidateFilePath checks a workspace-relative file path against the path
// invariants: no traversal segments, no absolute prefix, bounded length and
// depth, restricted character set.
func ValidateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if len(path) > MaxPathBytes {
		return fmt.Errorf("path exceeds %d bytes", MaxPathBytes)
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "\\") {
		return fmt.Errorf("absolute paths are not allowed")
	}
	for _, r := range path {
		if !isPathRune(r) {
			return fmt.Errorf("path contains disallowed character %q", r)
		}
	}
	segments := strings.Split(path, "/")
	if len(segments) > MaxPathSegments {
		return fmt.Errorf("path exceeds %d segments", MaxPathSegments)
	}
	for _, seg := range segments {
		if seg == "" {
			return fmt.Errorf("path contains an empty segment")
		}
		if seg == "." || seg == ".." {
			return fmt.Errorf("path contains a traversal segment")
		}
	}
	return nil
}

func isPathRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.' || r == '/' || r == ' ' || r == '-':
		return true
	}
	return false
}
