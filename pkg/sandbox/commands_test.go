package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent/run"
)

func TestCommandFor_Allowlist(t *testing.T) {
	tests := []struct {
		runType run.RunType
		argv0   string
		timeout time.Duration
	}{
		{run.RunTypeSdfValidate, "suitecloud", 60 * time.Second},
		{run.RunTypeJestUnitTest, "jest", 120 * time.Second},
		{run.RunTypeDeploySandbox, "suitecloud", 600 * time.Second},
	}
	for _, tt := range tests {
		t.Run(string(tt.runType), func(t *testing.T) {
			cmd, err := CommandFor(tt.runType)
			require.NoError(t, err)
			assert.Equal(t, tt.argv0, cmd.Argv[0])
			assert.Equal(t, tt.timeout, cmd.Timeout)
		})
	}
}

func TestCommandFor_RejectsUnlistedTypes(t *testing.T) {
	// Assertion batches run in-process and must never resolve to a command.
	_, err := CommandFor(run.RunTypeSuiteqlAssertions)
	require.ErrorIs(t, err, ErrCommandNotAllowed)

	_, err = CommandFor(run.RunType("rm_rf"))
	require.ErrorIs(t, err, ErrCommandNotAllowed)
}

func TestCommandFor_DeployWarnsOnAccountSpecificValues(t *testing.T) {
	cmd, err := CommandFor(run.RunTypeDeploySandbox)
	require.NoError(t, err)
	assert.Contains(t, cmd.Argv, "--accountspecificvalues")
	assert.Contains(t, cmd.Argv, "WARNING")
}
