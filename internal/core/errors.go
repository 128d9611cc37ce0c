package core

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes engine errors.
type ErrorKind string

const (
	// KindConfiguration covers invalid dimensions, rule tables and sampling
	// requests. The simulation state is unchanged when one is returned.
	KindConfiguration ErrorKind = "configuration"

	// KindAllocation covers history storage that cannot be sized as asked.
	KindAllocation ErrorKind = "allocation"
)

var (
	// ErrConfiguration matches every configuration error via errors.Is.
	ErrConfiguration = errors.New("configuration error")
	// ErrAllocation matches every allocation error via errors.Is.
	ErrAllocation = errors.New("allocation error")
)

// Error is a deterministic engine failure. Op names the rejected operation.
type Error struct {
	Kind ErrorKind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrAllocation:
		return e.Kind == KindAllocation
	}
	return false
}

// ConfigError builds a configuration error for op.
func ConfigError(op, format string, args ...any) error {
	return &Error{Kind: KindConfiguration, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// AllocError builds an allocation error for op.
func AllocError(op, format string, args ...any) error {
	return &Error{Kind: KindAllocation, Op: op, Msg: fmt.Sprintf(format, args...)}
}
