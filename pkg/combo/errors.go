// File: pkg/combo/errors.go
package combo

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against any *OpError of the same kind.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrReadFailure     = errors.New("read failure")
	ErrWriteFailure    = errors.New("write failure")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrorKind is a coarse-grained categorization for operation errors.
type ErrorKind string

const (
	KindFileNotFound    ErrorKind = "file_not_found"
	KindReadFailure     ErrorKind = "read_failure"
	KindWriteFailure    ErrorKind = "write_failure"
	KindInvalidArgument ErrorKind = "invalid_argument"
)

var kindSentinels = map[ErrorKind]error{
	KindFileNotFound:    ErrFileNotFound,
	KindReadFailure:     ErrReadFailure,
	KindWriteFailure:    ErrWriteFailure,
	KindInvalidArgument: ErrInvalidArgument,
}

// OpError wraps an underlying error with the operation and path it belongs to.
type OpError struct {
	Op   string    // Operation that failed, e.g. "read_lines" or "merge.validate".
	Kind ErrorKind // Classification of the failure.
	Path string    // Optional: relevant file path.
	Err  error     // Underlying cause, may be nil.
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel error for this error's kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// IsKind helps callers classify errors without inspecting messages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func invalidArgument(op string, format string, args ...any) error {
	return &OpError{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}
