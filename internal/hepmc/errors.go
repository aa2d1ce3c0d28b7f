package hepmc

import (
	"fmt"
)

// ErrorCode categorizes parse failures by the line kind that failed.
type ErrorCode string

const (
	// ErrCodeEventLine indicates a malformed `E` event-header line.
	ErrCodeEventLine ErrorCode = "EVENT_LINE"

	// ErrCodeUnitLine indicates a missing or malformed `U` unit line.
	ErrCodeUnitLine ErrorCode = "UNIT_LINE"

	// ErrCodeTrackLine indicates a malformed or inconsistent `P` track
	// line, including position/mother index violations and a listing that
	// ends before the declared particle count is reached.
	ErrCodeTrackLine ErrorCode = "TRACK_LINE"
)

// stage returns the human name of the failing line kind.
func (c ErrorCode) stage() string {
	switch c {
	case ErrCodeEventLine:
		return "event"
	case ErrCodeUnitLine:
		return "unit"
	case ErrCodeTrackLine:
		return "track"
	}
	return string(c)
}

// ParseError reports a fatal grammar or consistency violation in the
// input listing. The whole conversion aborts on the first one; nothing
// is retried or skipped.
type ParseError struct {
	// Code identifies the failing stage.
	Code ErrorCode

	// Reason describes the specific violation, empty when the line simply
	// failed to tokenize.
	Reason string

	// Line is the offending line's content, verbatim.
	Line string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("failed to parse %s line (%s): %s", e.Code.stage(), e.Reason, e.Line)
	}
	return fmt.Sprintf("failed to parse %s line: %s", e.Code.stage(), e.Line)
}

func parseErrf(code ErrorCode, line, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Reason: fmt.Sprintf(format, args...), Line: line}
}
