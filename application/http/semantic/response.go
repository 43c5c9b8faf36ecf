package semantic

import (
	"time"

	"http-message/application/http/semantic/status"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

type Response struct {
	Message

	code int
	// Empty means the table phrase for code.
	reason string
}

// NewResponse builds a response with the given status. An empty reason
// falls back to the standard phrase.
func NewResponse(code int, reason string, opts MessageOptions) (*Response, error) {
	r := &Response{}
	if err := r.init(opts); err != nil {
		return nil, err
	}
	if err := r.SetStatus(code, reason); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Response) StatusCode() int { return r.code }

// ReasonPhrase returns the override if non-empty, else the standard phrase.
func (r *Response) ReasonPhrase() string {
	if r.reason != "" {
		return r.reason
	}
	s, _ := status.FromCode(r.code)
	return s.ReasonPhrase
}

// Status returns the code paired with the phrase [Response.ReasonPhrase] reports.
func (r *Response) Status() status.Status {
	return status.Status{Code: r.code, ReasonPhrase: r.ReasonPhrase()}
}

// SetStatusCode keeps any reason override.
func (r *Response) SetStatusCode(code int) error {
	if _, ok := status.FromCode(code); !ok {
		return errors.Wrapf(ErrInvalidStatusCode, "%d", code)
	}
	r.code = code
	return nil
}

func (r *Response) SetReasonPhrase(reason string) { r.reason = reason }

// SetStatus validates code before touching anything.
func (r *Response) SetStatus(code int, reason string) error {
	if err := r.SetStatusCode(code); err != nil {
		return err
	}
	r.SetReasonPhrase(reason)
	return nil
}

// WithStatusCode drops any reason override in the copy.
func (r *Response) WithStatusCode(code int) (*Response, error) {
	if r.code == code && r.reason == "" {
		return r, nil
	}

	c := r.clone()
	if err := c.SetStatus(code, ""); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Response) WithReasonPhrase(reason string) *Response {
	if r.reason == reason {
		return r
	}

	c := r.clone()
	c.SetReasonPhrase(reason)
	return c
}

func (r *Response) WithStatus(code int, reason string) (*Response, error) {
	if r.code == code && r.reason == reason {
		return r, nil
	}

	c := r.clone()
	if err := c.SetStatus(code, reason); err != nil {
		return nil, err
	}
	return c, nil
}

// Date parses the Date header.
func (r *Response) Date() (time.Time, error) {
	return ParseDate(r.HeaderLine("Date"))
}

func (r *Response) SetDate(t time.Time) {
	r.headers.set("Date", Single(FormatDate(t)))
}

// Stamp sets the Date header to the current time of clk.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-6.6.1
func (r *Response) Stamp(clk clock.Clock) {
	r.SetDate(clk.Now())
}

func (r *Response) WithProtocolVersion(version string) (*Response, error) {
	return withProtocolVersion[Response](r, version)
}

func (r *Response) WithHeaders(fields []Field) (*Response, error) {
	return withHeaders[Response](r, fields)
}

func (r *Response) WithHeader(name string, value FieldValue) (*Response, error) {
	return withHeader[Response](r, name, value)
}

func (r *Response) WithAddedHeader(name string, value FieldValue) (*Response, error) {
	return withAddedHeader[Response](r, name, value)
}

func (r *Response) WithoutHeader(name string) (*Response, error) {
	return withoutHeader[Response](r, name)
}

func (r *Response) WithBody(body Body) *Response {
	return withBody[Response](r, body)
}

func (r *Response) message() *Message { return &r.Message }

func (r *Response) clone() *Response {
	c := *r
	c.Message = *r.Message.clone()
	return &c
}
