package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate flight")
	ErrPersistence  = errors.New("persistence error")
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidInput = errors.New("invalid input")
)

type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindDuplicate   ErrorKind = "duplicate"
	KindPersistence ErrorKind = "persistence"
)

// OpError wraps a store fault with the operation that produced it.
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
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

func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindDuplicate:
		return target == ErrDuplicate
	case KindPersistence:
		return target == ErrPersistence
	}
	return false
}

// IsKind classifies err without depending on storage packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// LookupError names the entity lookup that failed while resolving a flight.
// It always matches ErrNotFound, whatever the underlying cause.
type LookupError struct {
	Entity string
	ID     int64
	Err    error
}

func (e *LookupError) Error() string {
	msg := e.Entity + " not found"
	if e.ID != 0 {
		msg = fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	if e.Err != nil && !errors.Is(e.Err, ErrNotFound) {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrNotFound }
