package semantic

import "github.com/pkg/errors"

var (
	ErrInvalidHeaderKey       = errors.New("header name must be a non-empty string")
	ErrInvalidMethod          = errors.New("invalid HTTP method")
	ErrInvalidStatusCode      = errors.New("invalid HTTP status code")
	ErrInvalidProtocolVersion = errors.New("invalid protocol version format")
	ErrInvalidDate            = errors.New("invalid http-date")
)
