// Package errors provides a hierarchical error system for dcj operations.
// It implements typed errors that can be inspected and handled differently
// based on their category, and maps every error to the process exit code
// the wrapper must terminate with.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the category of error for classification and handling.
// This enables different error handling strategies based on error type
// (e.g., downgrading env-file issues to warnings vs. aborting on usage errors).
type ErrorType string

// Error type constants define the categories of errors that can occur while
// wrapping a compose invocation. These constants enable type-based error
// handling and give semantic meaning to each failure class.
const (
	ErrTypeUsage    ErrorType = "usage"
	ErrTypeTool     ErrorType = "tool"
	ErrTypeTemplate ErrorType = "template"
	ErrTypeFile     ErrorType = "file"
)

// Exit codes for the failure classes dcj distinguishes. The wrapped tool's
// own exit code is propagated verbatim and never passes through this table.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitNoTemplate = 2
)

// DCJError is the base error type that provides structured error information.
// It implements a hierarchical error system where specific error types can be
// identified and handled appropriately. The embedded path and cause information
// enables precise error reporting and debugging.
type DCJError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *DCJError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *DCJError) Unwrap() error {
	return e.Cause
}

// Is implements error identity checking for Go 1.13+ error handling.
// This method enables errors.Is() calls to work correctly with typed errors,
// allowing callers to check for specific error types in error chains.
func (e *DCJError) Is(target error) bool {
	t, ok := target.(*DCJError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// UsageError represents malformed command-line flag usage, such as a
// value-taking flag appearing as the last token. It aborts the run before
// any environment or template processing begins.
type UsageError struct {
	*DCJError
}

// NewUsageError creates a usage error naming the flag that was misused.
// This constructor produces the user-facing message for a value-taking
// flag that has no following value.
func NewUsageError(flag string) *UsageError {
	return &UsageError{
		DCJError: &DCJError{
			Type:    ErrTypeUsage,
			Message: fmt.Sprintf("expected a value after %s", flag),
		},
	}
}

// ToolNotFoundError represents the absence of any runnable compose form.
// This error is fatal before any side effects and maps to exit code 1.
type ToolNotFoundError struct {
	*DCJError
}

// NewToolNotFoundError creates an error reporting that neither compose
// invocation form could be resolved on the search path.
func NewToolNotFoundError() *ToolNotFoundError {
	return &ToolNotFoundError{
		DCJError: &DCJError{
			Type:    ErrTypeTool,
			Message: "neither 'docker' (with 'compose' subcommand) nor 'docker-compose' was found in PATH",
		},
	}
}

// RenderError represents a template rendering failure (syntax error or
// unresolved variable). It is fatal in both the dump and file-writing paths.
type RenderError struct {
	*DCJError
}

// NewRenderError creates a template rendering error with the template path
// and the underlying engine failure as context.
func NewRenderError(path string, cause error) *RenderError {
	return &RenderError{
		DCJError: &DCJError{
			Type:    ErrTypeTemplate,
			Path:    path,
			Message: "template render failed",
			Cause:   cause,
		},
	}
}

// NoTemplateError represents a --dump request when no template candidate
// exists in the working directory. It carries a distinct exit code so
// callers and scripts can tell "nothing to dump" apart from real failures.
type NoTemplateError struct {
	*DCJError
}

// NewNoTemplateError creates the dump-requested-without-template error.
func NewNoTemplateError() *NoTemplateError {
	return &NoTemplateError{
		DCJError: &DCJError{
			Type:    ErrTypeTemplate,
			Message: "--dump requested but no template was found",
		},
	}
}

// FileError represents file system operation errors with path context,
// such as a failure to create the output directory or write the rendered
// configuration file.
type FileError struct {
	*DCJError
}

// NewFileError creates a file operation error with context.
func NewFileError(path, message string, cause error) *FileError {
	return &FileError{
		DCJError: &DCJError{
			Type:    ErrTypeFile,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// ExitStatus carries a child-process exit code through the error return
// path without any message of its own. It exists so the wrapped tool's
// exit code can be propagated verbatim as this program's exit code.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitStatus wraps a child exit code for silent propagation.
func NewExitStatus(code int) *ExitStatus {
	return &ExitStatus{Code: code}
}

// ExitCode maps any error to the process exit code dcj terminates with.
// A nil error is success, an ExitStatus propagates its child code, a
// missing-template dump maps to the distinct code 2, and everything else
// is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var status *ExitStatus
	if stderrors.As(err, &status) {
		return status.Code
	}
	var noTemplate *NoTemplateError
	if stderrors.As(err, &noTemplate) {
		return ExitNoTemplate
	}
	return ExitFailure
}
