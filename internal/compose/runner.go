// Package compose resolves which docker compose form is available and runs
// it as a child process. Process execution sits behind a capability
// interface so the orchestration logic can be tested without spawning
// real processes.
package compose

import (
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"dcj/internal/errors"
)

// Resolve returns the argv prefix used to invoke docker compose and a
// human-readable label for it. The Docker CLI v2 subcommand form is
// preferred; the legacy standalone binary is the fallback. This is a pure
// path lookup with no caching; it is called once per run.
func Resolve() ([]string, string, error) {
	if path, err := exec.LookPath("docker"); err == nil {
		return []string{path, "compose"}, "docker compose", nil
	}
	if path, err := exec.LookPath("docker-compose"); err == nil {
		return []string{path}, "docker-compose", nil
	}
	return nil, "", errors.NewToolNotFoundError()
}

// Runner is the process-execution capability: run the argv to completion
// and report its exit code.
type Runner interface {
	Run(argv []string) (int, error)
}

// ExecRunner implements Runner with a real child process wired to this
// process's standard streams. There is no timeout or cancellation; an
// interrupt delivered to dcj propagates to the child naturally through
// the shared terminal.
type ExecRunner struct{}

// Run executes argv and waits for completion. A child that exited with a
// non-zero status is not an error here: its exit code is the result.
func (ExecRunner) Run(argv []string) (int, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return errors.ExitFailure, errors.NewFileError(argv[0], "failed to run command", err)
	}
	return 0, nil
}

// QuoteCommand renders argv as a single shell-escaped line for the
// transparency echo printed before the child is spawned.
func QuoteCommand(argv []string) string {
	return shellquote.Join(argv...)
}
