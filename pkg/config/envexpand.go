package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// templates. Uses {{.VAR_NAME}} syntax so literal $ characters survive,
// which matters here: SuiteQL snippets, redaction regexes, and passwords
// in credential blobs all legitimately contain $.
//
// Examples:
//   - {{.ANTHROPIC_API_KEY}} expands to the variable's value
//   - {{.DB_HOST}}:{{.DB_PORT}} expands both variables
//   - pattern: "^secret.*$" is preserved literally
//
// Missing variables expand to the empty string. A malformed template
// passes the original data through so the YAML parser can report it.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split only on the first = to handle values containing =
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}
