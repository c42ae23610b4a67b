package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/linuxmatters/clearcall/internal/audio"
)

// ErrorKind classifies a capture or enhancement failure for the caller. The
// core reports the most specific applicable kind and never retries; retry and
// backoff policy belongs to whoever drives the session.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInitializationFailed
	ErrSourceUnavailable
	ErrPermissionDenied
	ErrInsufficientStorage
	ErrEncodingFailed
	ErrFileCreationFailed
	ErrHardwareError
	ErrAudioProcessingFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInitializationFailed:
		return "initialization failed"
	case ErrSourceUnavailable:
		return "source unavailable"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrInsufficientStorage:
		return "insufficient storage"
	case ErrEncodingFailed:
		return "encoding failed"
	case ErrFileCreationFailed:
		return "file creation failed"
	case ErrHardwareError:
		return "hardware error"
	case ErrAudioProcessingFailed:
		return "audio processing failed"
	default:
		return "unknown error"
	}
}

// Error is a typed processing failure.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a typed Error wrapping an underlying cause (cause may be nil).
func Errorf(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// KindOf extracts the ErrorKind from err, or ErrUnknown for untyped errors.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ErrUnknown
}

// Result describes a successfully finalised capture session.
type Result struct {
	OutputPath string
	Duration   time.Duration
	FileSize   int64
	Quality    audio.Quality
}
