package errors

import (
	"errors"
	"testing"
)

func TestDCJError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "usage error names the flag",
			err:         NewUsageError("--env-file"),
			expectedMsg: "usage error: expected a value after --env-file",
		},
		{
			name:        "tool not found",
			err:         NewToolNotFoundError(),
			expectedMsg: "tool error: neither 'docker' (with 'compose' subcommand) nor 'docker-compose' was found in PATH",
		},
		{
			name:        "render error carries template path",
			err:         NewRenderError("docker-compose.jinja", errors.New("boom")),
			expectedMsg: "template error for docker-compose.jinja: template render failed",
		},
		{
			name:        "no template error",
			err:         NewNoTemplateError(),
			expectedMsg: "template error: --dump requested but no template was found",
		},
		{
			name:        "file error carries path",
			err:         NewFileError("out/docker-compose.yml", "failed to write rendered file", errors.New("disk full")),
			expectedMsg: "file error for out/docker-compose.yml: failed to write rendered file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expectedMsg {
				t.Errorf("Error() = %q, want %q", got, tt.expectedMsg)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("engine failure")
	err := NewRenderError("tpl.jinja", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestIsMatchesOnType(t *testing.T) {
	a := NewUsageError("--yml-file")
	b := NewUsageError("--env-file")

	if !errors.Is(a, b.DCJError) {
		t.Error("expected usage errors to match by type")
	}
	if errors.Is(a, NewToolNotFoundError().DCJError) {
		t.Error("expected different error types not to match")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect int
	}{
		{name: "nil is success", err: nil, expect: ExitOK},
		{name: "usage error", err: NewUsageError("--yml-file"), expect: ExitFailure},
		{name: "tool not found", err: NewToolNotFoundError(), expect: ExitFailure},
		{name: "render failure", err: NewRenderError("t.jinja", errors.New("x")), expect: ExitFailure},
		{name: "dump without template", err: NewNoTemplateError(), expect: ExitNoTemplate},
		{name: "child status propagates", err: NewExitStatus(17), expect: 17},
		{name: "child success status", err: NewExitStatus(0), expect: 0},
		{name: "plain error", err: errors.New("anything"), expect: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.expect {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expect)
			}
		})
	}
}
