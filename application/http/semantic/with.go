package semantic

import "reflect"

// messenger is a pointer to a message type that can copy itself.
type messenger[T any] interface {
	*T
	message() *Message
	clone() *T
}

func withProtocolVersion[T any, P messenger[T]](p P, version string) (*T, error) {
	if p.message().version == version {
		return (*T)(p), nil
	}

	c := P(p.clone())
	if err := c.message().SetProtocolVersion(version); err != nil {
		return nil, err
	}
	return (*T)(c), nil
}

func withHeaders[T any, P messenger[T]](p P, fields []Field) (*T, error) {
	if p.message().headers.holdsExactly(fields) {
		return (*T)(p), nil
	}

	c := P(p.clone())
	if err := c.message().SetHeaders(fields); err != nil {
		return nil, err
	}
	return (*T)(c), nil
}

func withHeader[T any, P messenger[T]](p P, name string, value FieldValue) (*T, error) {
	if err := assertValidFieldName(name); err != nil {
		return nil, err
	}
	if p.message().headers.holds(name, value) {
		return (*T)(p), nil
	}

	c := P(p.clone())
	c.message().headers.set(name, value)
	return (*T)(c), nil
}

func withAddedHeader[T any, P messenger[T]](p P, name string, value FieldValue) (*T, error) {
	if err := assertValidFieldName(name); err != nil {
		return nil, err
	}

	c := P(p.clone())
	if err := c.message().AddHeader(name, value); err != nil {
		return nil, err
	}
	return (*T)(c), nil
}

func withoutHeader[T any, P messenger[T]](p P, name string) (*T, error) {
	if err := assertValidFieldName(name); err != nil {
		return nil, err
	}
	if !p.message().headers.Has(name) {
		return (*T)(p), nil
	}

	c := P(p.clone())
	c.message().headers.remove(name)
	return (*T)(c), nil
}

func withBody[T any, P messenger[T]](p P, body Body) *T {
	if sameBody(p.message().body, body) {
		return (*T)(p)
	}

	c := P(p.clone())
	c.message().SetBody(body)
	return (*T)(c)
}

// sameBody compares by identity without panicking on non-comparable
// implementations, which never count as the same body.
func sameBody(a, b Body) bool {
	if a == nil || b == nil {
		return a == b
	}

	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
