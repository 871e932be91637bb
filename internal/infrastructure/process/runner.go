// Package process spawns package manager child processes. Arguments are passed
// straight to the executable; no shell is ever involved.
package process

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

// Output holds the captured streams of a finished child process.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner runs one child process to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// ExecRunner implements Runner with os/exec. It blocks until the child exits
// and sets no timeout of its own.
type ExecRunner struct {
	env []string
}

// NewExecRunner creates a runner whose children inherit the current
// environment plus the given KEY=VALUE pairs.
func NewExecRunner(env []string) *ExecRunner {
	return &ExecRunner{env: env}
}

// Run executes name with args. A non-zero exit, or a failure to start, is
// reported as *entities.ProcessExecutionError carrying the captured stderr.
func (it *ExecRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	command := append([]string{name}, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), it.env...)
	hideConsoleWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running: %s", strings.Join(command, " "))
	runErr := cmd.Run()

	output := &Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if stdout.Len() > 0 {
		logger.Debugf("Output:\n%s", stdout.String())
	}

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return output, &entities.ProcessExecutionError{
			Command:  command,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      runErr,
		}
	}

	return output, nil
}
