package sandbox

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// ErrTimedOut reports that a subprocess hit its wall-clock limit and was
// killed.
var ErrTimedOut = errors.New("subprocess timed out")

// Subprocess executes one external command. Injectable so tests can run
// the sandbox without spawning real processes.
type Subprocess interface {
	Run(ctx context.Context, argv []string, dir string, env []string, timeout time.Duration) (exitCode int, stdout, stderr []byte, err error)
}

type execSubprocess struct{}

// NewSubprocess returns the os/exec-backed implementation.
func NewSubprocess() Subprocess {
	return execSubprocess{}
}

func (execSubprocess) Run(ctx context.Context, argv []string, dir string, env []string, timeout time.Duration) (int, []byte, []byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if runCtx.Err() == context.DeadlineExceeded {
		return -1, stdout.Bytes(), stderr.Bytes(), ErrTimedOut
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), stdout.Bytes(), stderr.Bytes(), nil
		}
		return -1, stdout.Bytes(), stderr.Bytes(), err
	}
	return 0, stdout.Bytes(), stderr.Bytes(), nil
}
