package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultCommandTimeout bounds external tool invocations.
const DefaultCommandTimeout = 10 * time.Minute

// CommandRunner abstracts running external tools such as the CASM compiler or scarb.
type CommandRunner interface {
	// Run executes name with args in workDir and returns stdout and stderr separately.
	Run(ctx context.Context, workDir string, name string, args ...string) (stdout string, stderr string, err error)
}

// LocalCommandRunner provides a concrete implementation using os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner. A non-positive
// timeout falls back to DefaultCommandTimeout.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	return &LocalCommandRunner{
		timeout: timeout,
	}
}

// Run executes the command and waits for it to finish.
func (a *LocalCommandRunner) Run(ctx context.Context, workDir string, name string, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - the command is taken from the user's own configuration
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}
