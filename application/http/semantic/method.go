package semantic

import (
	"strings"

	"github.com/pkg/errors"
)

// Method keeps the casing it was given; comparison against the known
// methods is case-insensitive.
type Method string

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH" // RFC 5789
)

var knownMethods = map[Method]struct{}{
	MethodGet:     {},
	MethodHead:    {},
	MethodPost:    {},
	MethodPut:     {},
	MethodDelete:  {},
	MethodConnect: {},
	MethodOptions: {},
	MethodTrace:   {},
	MethodPatch:   {},
}

// Canonical returns the method in upper case.
func (m Method) Canonical() Method { return Method(strings.ToUpper(string(m))) }

// Is reports whether m names the same method as other, ignoring case.
func (m Method) Is(other Method) bool { return m.Canonical() == other.Canonical() }

func (m Method) IsValid() bool {
	_, ok := knownMethods[m.Canonical()]
	return ok
}

func assertValidMethod(m Method) error {
	if !m.IsValid() {
		return errors.Wrapf(ErrInvalidMethod, "%q", string(m))
	}
	return nil
}
