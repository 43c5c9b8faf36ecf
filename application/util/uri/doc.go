// Package uri implements a Uniform Resource Identifier (URI) value.
//
// A [URI] is decomposed into scheme, user, password, host, port, path,
// query and fragment. Components are kept verbatim (no percent-decoding);
// scheme and host are stored as given and read lowercased.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986
package uri
