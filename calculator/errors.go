package calculator

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNumeric          = errors.New("numeric failure")
)

type ErrorKind string

const (
	KindInvalidParameter ErrorKind = "invalid_parameter"
	KindNumeric          ErrorKind = "numeric"
	KindNotFound         ErrorKind = "not_found"
)

// OpError wraps an underlying error with the generator that raised it.
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

func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func invalidf(op, format string, args ...interface{}) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidParameter,
		Err:  fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...)),
	}
}

func numericf(op, format string, args ...interface{}) error {
	return &OpError{
		Op:   op,
		Kind: KindNumeric,
		Err:  fmt.Errorf("%w: %s", ErrNumeric, fmt.Sprintf(format, args...)),
	}
}
