package cli

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/upc-hep/upc2lhe/internal/convert"
)

// Exit codes for the executable.
const (
	ExitSuccess      = 0 // successful conversion
	ExitFailure      = 1 // usage/validation failure (bad arguments, bad manifest)
	ExitCommandError = 2 // command error (unreadable input, parse failure, run log error)
)

// ExitError is an error carrying a specific process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error // underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not
// ExitErrors (cobra argument errors, mostly) map to ExitFailure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// printSummary writes the one-line success summary for a completed run.
func printSummary(w io.Writer, sum *convert.Summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d events written in %s\n", sum.Events, sum.Output)
}
