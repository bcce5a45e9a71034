package transport

import "fmt"

// ErrorKind classifies failures on an accepted connection.
type ErrorKind int

const (
	ConnectionClosed ErrorKind = iota
	SocketReadFailure
	SocketWriteFailure
	SocketCloseFailure
	Timeout
	UringInitFailure
	UringSubmitFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionClosed:
		return "Connection closed"
	case SocketReadFailure:
		return "Socket read failed"
	case SocketWriteFailure:
		return "Socket write failed"
	case SocketCloseFailure:
		return "Socket close failed"
	case Timeout:
		return "Connection timed out"
	case UringInitFailure:
		return "io_uring initialization failed"
	case UringSubmitFailure:
		return "io_uring submission failed"
	default:
		return fmt.Sprintf("Unknown transport error: %d", int(k))
	}
}

// Error wraps the underlying I/O error with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Transport Error: %s (underlying: %v)", e.Kind, e.Err)
	}
	return fmt.Sprintf("Transport Error: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}
