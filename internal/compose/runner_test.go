package compose

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dcj/internal/errors"
)

// fakeBinary drops an executable file into dir so exec.LookPath can
// resolve it.
func fakeBinary(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestResolvePrefersDockerCLI(t *testing.T) {
	dir := t.TempDir()
	fakeBinary(t, dir, "docker")
	fakeBinary(t, dir, "docker-compose")
	t.Setenv("PATH", dir)

	argv, label, err := Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{filepath.Join(dir, "docker"), "compose"}
	if diff := cmp.Diff(want, argv); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	if label != "docker compose" {
		t.Errorf("label = %q, want %q", label, "docker compose")
	}
}

func TestResolveFallsBackToLegacyBinary(t *testing.T) {
	dir := t.TempDir()
	fakeBinary(t, dir, "docker-compose")
	t.Setenv("PATH", dir)

	argv, label, err := Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{filepath.Join(dir, "docker-compose")}
	if diff := cmp.Diff(want, argv); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	if label != "docker-compose" {
		t.Errorf("label = %q, want %q", label, "docker-compose")
	}
}

func TestResolveNeitherFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, _, err := Resolve()
	var notFound *errors.ToolNotFoundError
	if !stderrors.As(err, &notFound) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
}

func TestExecRunnerExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		argv   []string
		expect int
	}{
		{name: "success", argv: []string{"/bin/sh", "-c", "exit 0"}, expect: 0},
		{name: "failure code propagates", argv: []string{"/bin/sh", "-c", "exit 42"}, expect: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ExecRunner{}.Run(tt.argv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.expect {
				t.Errorf("exit code = %d, want %d", code, tt.expect)
			}
		})
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	code, err := ExecRunner{}.Run([]string{"/nonexistent/binary"})
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
	if code != errors.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, errors.ExitFailure)
	}
}

func TestQuoteCommand(t *testing.T) {
	got := QuoteCommand([]string{"docker", "compose", "up", "my service"})
	want := `docker compose up 'my service'`
	if got != want {
		t.Errorf("QuoteCommand() = %q, want %q", got, want)
	}
}
