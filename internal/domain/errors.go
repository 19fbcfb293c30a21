package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrEntityDeleted    = errors.New("entity already deleted")
	ErrRecordNotFound   = errors.New("record not found")
	ErrInvalidIntent    = errors.New("invalid mutation intent")
	ErrTokenSlotMissing = errors.New("no token stored")
)

type ErrorKind string

const (
	ErrorValidation ErrorKind = "validation"
	ErrorNetwork    ErrorKind = "network"
	ErrorServer     ErrorKind = "server"
	ErrorAuth       ErrorKind = "auth"
)

// ErrorDescriptor classifies an expected remote failure. It travels as data
// inside result envelopes rather than as a panic or a wrapped program error.
type ErrorDescriptor struct {
	Kind    ErrorKind
	Message string
}

func (e *ErrorDescriptor) Error() string {
	if e.Message == "" {
		return string(e.Kind) + " error"
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Recoverable reports whether the failure leaves the session usable.
// Auth failures tear the session down instead of rolling back.
func (e *ErrorDescriptor) Recoverable() bool {
	return e.Kind != ErrorAuth
}

func ValidationError(msg string) *ErrorDescriptor {
	return &ErrorDescriptor{Kind: ErrorValidation, Message: msg}
}

func NetworkError(msg string) *ErrorDescriptor {
	return &ErrorDescriptor{Kind: ErrorNetwork, Message: msg}
}

func ServerError(msg string) *ErrorDescriptor {
	if msg == "" {
		msg = "the server reported an error"
	}
	return &ErrorDescriptor{Kind: ErrorServer, Message: msg}
}

func AuthError() *ErrorDescriptor {
	return &ErrorDescriptor{Kind: ErrorAuth, Message: "session is no longer valid"}
}
