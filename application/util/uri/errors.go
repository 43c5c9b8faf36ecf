package uri

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPort = errors.Errorf("port must be within [%d, %d]", PortMin, PortMax)
	ErrInvalidURI  = errors.New("invalid URI")
)

// ParseError records an input that [Parse] could not decompose.
type ParseError struct {
	Input string
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid URI %q: %v", e.Input, e.cause)
}

func (e *ParseError) Cause() error  { return e.cause }
func (e *ParseError) Unwrap() error { return e.cause }

func (e *ParseError) Is(target error) bool { return target == ErrInvalidURI }
