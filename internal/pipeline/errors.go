package pipeline

import "fmt"

// ErrorKind classifies the failures that abort a whole run. Everything else
// degrades to a per-chunk null summary.
type ErrorKind string

const (
	KindInvalidInput          ErrorKind = "invalid_input"
	KindTranscriptUnavailable ErrorKind = "transcript_unavailable"
)

// Error is a fatal pipeline error with a machine-readable kind.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func invalidInput(err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: err.Error()}
}

func transcriptUnavailable(err error) *Error {
	return &Error{Kind: KindTranscriptUnavailable, Message: err.Error()}
}
