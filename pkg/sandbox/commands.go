package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/suiteops/suitepilot/ent/run"
)

// ErrCommandNotAllowed is returned for any run type outside the fixed
// command enumeration, before any I/O happens.
var ErrCommandNotAllowed = errors.New("command not allowed")

// Command is one allowlisted subprocess invocation.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

// commands is the complete allowlist. suiteql_assertions is absent on
// purpose: assertion batches run in-process, never as a subprocess.
var commands = map[run.RunType]Command{
	run.RunTypeSdfValidate: {
		Argv:    []string{"suitecloud", "project:validate"},
		Timeout: 60 * time.Second,
	},
	run.RunTypeJestUnitTest: {
		Argv:    []string{"jest", "--json", "--coverage"},
		Timeout: 120 * time.Second,
	},
	run.RunTypeDeploySandbox: {
		Argv:    []string{"suitecloud", "project:deploy", "--accountspecificvalues", "WARNING"},
		Timeout: 600 * time.Second,
	},
}

// CommandFor resolves the allowlisted command for a run type.
func CommandFor(runType run.RunType) (Command, error) {
	cmd, ok := commands[runType]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrCommandNotAllowed, runType)
	}
	return cmd, nil
}
