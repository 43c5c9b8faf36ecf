package semantic

import (
	"http-message/application/util/uri"
)

type Request struct {
	Message

	method Method
	// Empty means derived from uri.
	target string
	uri    uri.URI
}

// NewRequest parses rawURI and builds a request with Host synchronized
// from it.
func NewRequest(method Method, rawURI string, opts MessageOptions) (*Request, error) {
	u, err := uri.Parse(rawURI)
	if err != nil {
		return nil, err
	}
	return NewRequestFromURI(method, u, opts)
}

func NewRequestFromURI(method Method, u uri.URI, opts MessageOptions) (*Request, error) {
	r := &Request{}
	if err := r.init(opts); err != nil {
		return nil, err
	}
	if err := r.SetMethod(method); err != nil {
		return nil, err
	}
	r.SetURI(u, false)
	return r, nil
}

func (r *Request) Method() Method { return r.method }

func (r *Request) SetMethod(method Method) error {
	if err := assertValidMethod(method); err != nil {
		return err
	}
	r.method = method
	return nil
}

// WithMethod returns r itself if method is byte-for-byte the current one.
func (r *Request) WithMethod(method Method) (*Request, error) {
	if r.method == method {
		return r, nil
	}

	c := r.clone()
	if err := c.SetMethod(method); err != nil {
		return nil, err
	}
	return c, nil
}

// RequestTarget returns the override if set. Otherwise it is the origin-form
// of the URI: its path, or "/" when empty, followed by "?query" when the
// query is non-empty.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3.2.1
func (r *Request) RequestTarget() string {
	if r.target != "" {
		return r.target
	}

	target := r.uri.Path()
	if target == "" {
		target = "/"
	}
	if q := r.uri.Query(); q != "" {
		target += "?" + q
	}
	return target
}

// SetRequestTarget stores target verbatim. Passing "" clears the override.
func (r *Request) SetRequestTarget(target string) { r.target = target }

func (r *Request) WithRequestTarget(target string) *Request {
	if r.target == target {
		return r
	}

	c := r.clone()
	c.SetRequestTarget(target)
	return c
}

func (r *Request) URI() uri.URI { return r.uri }

// SetURI replaces the URI and synchronizes the Host header.
//
// A URI without a host never touches Host. Otherwise Host is overwritten,
// unless preserveHost is set and Host already has a non-empty value.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-7.2
func (r *Request) SetURI(u uri.URI, preserveHost bool) {
	r.uri = u

	host := u.Host()
	if host == "" {
		return
	}
	if !preserveHost || r.HeaderLine("Host") == "" {
		r.headers.set("Host", Single(host))
	}
}

// WithURI always returns a copy.
func (r *Request) WithURI(u uri.URI, preserveHost bool) *Request {
	c := r.clone()
	c.SetURI(u, preserveHost)
	return c
}

func (r *Request) WithProtocolVersion(version string) (*Request, error) {
	return withProtocolVersion[Request](r, version)
}

func (r *Request) WithHeaders(fields []Field) (*Request, error) {
	return withHeaders[Request](r, fields)
}

func (r *Request) WithHeader(name string, value FieldValue) (*Request, error) {
	return withHeader[Request](r, name, value)
}

func (r *Request) WithAddedHeader(name string, value FieldValue) (*Request, error) {
	return withAddedHeader[Request](r, name, value)
}

func (r *Request) WithoutHeader(name string) (*Request, error) {
	return withoutHeader[Request](r, name)
}

func (r *Request) WithBody(body Body) *Request {
	return withBody[Request](r, body)
}

func (r *Request) message() *Message { return &r.Message }

func (r *Request) clone() *Request {
	c := *r
	c.Message = *r.Message.clone()
	return &c
}
