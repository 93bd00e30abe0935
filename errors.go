package main

import (
	"fmt"

	"github.com/friendsofgo/errors"
)

// Kind identifies which step of a transmission failed.
type Kind int

// Failure kinds. Every one of them is terminal for the run.
const (
	UnhandledFault Kind = iota
	PrivilegeError
	UsageError
	SocketCreationError
	FileOpenError
	FileReadError
	SocketWriteError
)

func (k Kind) String() string {
	switch k {
	case PrivilegeError:
		return "privilege"
	case UsageError:
		return "usage"
	case SocketCreationError:
		return "socket_create"
	case FileOpenError:
		return "file_open"
	case FileReadError:
		return "file_read"
	case SocketWriteError:
		return "socket_write"
	default:
		return "unhandled"
	}
}

// Usage is the single line printed when the arguments can't be used.
const Usage = "usage: wirefang-py <file> <interface>"

// Error is a failure of one transmission step.
type Error struct {
	Kind Kind
	// Path is the frame file, for FileOpenError
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

// Cause implements the causer interface of friendsofgo/errors
func (e *Error) Cause() error { return e.Err }

// Unwrap implements the go 1.13 wrapping protocol
func (e *Error) Unwrap() error { return e.Err }

func fail(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnhandledFault
}

// Diagnostic maps an error to the one line reported on stderr.
// The underlying cause is never part of the message.
func Diagnostic(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "error: unhandled exception"
	}
	switch e.Kind {
	case PrivilegeError:
		return "error: this program requires superuser privilages"
	case UsageError:
		return Usage
	case SocketCreationError:
		return "error: failure to create network connection"
	case FileOpenError:
		return fmt.Sprintf("error: failure to open file (%s)", e.Path)
	case FileReadError:
		return "error: failure reading from file"
	case SocketWriteError:
		return "error: failure writing packet to network"
	case UnhandledFault:
		return "error: unhandled exception"
	}
	return "error: unhandled exception"
}
