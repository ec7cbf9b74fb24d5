package redact

import "regexp"

// Artifact byte streams (stdout/stderr and structured reports) are
// redacted with compiled patterns before capping. Patterns follow the
// same compile-once shape as tool-result redaction: anything that looks
// like a bearer credential or a key=value secret assignment is replaced.
var streamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Authorization:\s*Bearer\s+\S+`),
	regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9._~+/=-]+`),
	regexp.MustCompile(`(?i)\b(api_key|token|secret|password)\s*[=:]\s*\S+`),
}

// MaxArtifactBytes caps every stored artifact after redaction.
const MaxArtifactBytes = 256 * 1024

// TruncationMarker is appended to oversized artifact content.
const TruncationMarker = "\n...[TRUNCATED]"

// Stream redacts credential-shaped substrings from a captured byte stream.
func Stream(b []byte) []byte {
	for _, p := range streamPatterns {
		b = p.ReplaceAll(b, []byte(Placeholder))
	}
	return b
}

// Cap truncates content to MaxArtifactBytes, appending the truncation
// marker when content was dropped. Returns the content and whether it
// was truncated.
func Cap(b []byte) ([]byte, bool) {
	if len(b) <= MaxArtifactBytes {
		return b, false
	}
	capped := make([]byte, MaxArtifactBytes, MaxArtifactBytes+len(TruncationMarker))
	copy(capped, b[:MaxArtifactBytes])
	return append(capped, TruncationMarker...), true
}
