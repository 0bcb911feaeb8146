package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hiro2620/sphero-controll/internal/ui"
)

// Runner runs external commands on the host.
// Adapters depend on this interface so tests can substitute a fake.
type Runner interface {
	// Run executes a command and returns an error on non-zero exit.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec against the real host
type ExecRunner struct {
	// Dir is the working directory for commands; empty means inherit
	Dir string
}

// NewExecRunner creates a runner rooted at the given working directory
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{Dir: dir}
}

// Run executes a command, surfacing combined output at debug level
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	ui.Debug("Running: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			ui.Errorf("%s output:\n%s", name, strings.TrimSpace(string(output)))
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	if len(output) > 0 {
		ui.Debug("%s output:\n%s", name, strings.TrimSpace(string(output)))
	}
	return nil
}

// Output executes a command and returns its combined output
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ui.Debug("Running: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(output), nil
}

// LookPath reports whether a tool is available on PATH.
// Declared as a variable so precondition checks can be faked in tests.
var LookPath = func(tool string) error {
	_, err := exec.LookPath(tool)
	return err
}
