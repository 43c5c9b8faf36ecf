package semantic

import (
	"io"

	iolib "http-message/lib/io"
)

// Body is the stream carrying a message body.
// [*iolib.Stream] implements it.
type Body interface {
	io.ReadWriteSeeker
	io.Closer
	Tell() (int64, error)
	EOF() bool
	Metadata(key string) (value any, ok bool)
}

var _ Body = (*iolib.Stream)(nil)

// HTTPMessage is the read side shared by [Message], [Request] and [Response].
type HTTPMessage interface {
	ProtocolVersion() string
	Headers() map[string][]string
	HeaderNames() []string
	Header(name string) []string
	HeaderLine(name string) string
	HasHeader(name string) bool
	Body() Body
}

var (
	_ HTTPMessage = (*Message)(nil)
	_ HTTPMessage = (*Request)(nil)
	_ HTTPMessage = (*Response)(nil)
)

type MessageOptions struct {
	Headers []Field

	// Body takes precedence over Content.
	Body Body
	// Content is copied into a fresh in-memory stream when Body is nil.
	Content []byte

	// Defaults to [DefaultProtocolVersion].
	Version string
}

// Message holds a protocol version, headers and a body.
//
// Set* methods mutate in place. With* methods return the receiver itself
// when nothing would change, and a modified copy otherwise. Copies own their
// headers, but share the body: closing it through one copy closes it for all.
type Message struct {
	version string
	headers Headers
	body    Body
}

func NewMessage(opts MessageOptions) (*Message, error) {
	m := &Message{}
	if err := m.init(opts); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message) init(opts MessageOptions) error {
	if err := m.SetHeaders(opts.Headers); err != nil {
		return err
	}

	version := opts.Version
	if version == "" {
		version = DefaultProtocolVersion
	}
	if err := m.SetProtocolVersion(version); err != nil {
		return err
	}

	body := opts.Body
	if body == nil {
		body = iolib.NewMemoryStream(opts.Content, iolib.MemoryOptions{})
	}
	m.SetBody(body)

	return nil
}

func (m *Message) ProtocolVersion() string { return m.version }

func (m *Message) SetProtocolVersion(version string) error {
	if err := assertValidProtocolVersion(version); err != nil {
		return err
	}
	m.version = version
	return nil
}

func (m *Message) Headers() map[string][]string  { return m.headers.Fields() }
func (m *Message) HeaderNames() []string         { return m.headers.Names() }
func (m *Message) Header(name string) []string   { return m.headers.Get(name) }
func (m *Message) HeaderLine(name string) string { return m.headers.Line(name) }
func (m *Message) HasHeader(name string) bool    { return m.headers.Has(name) }

func (m *Message) SetHeaders(fields []Field) error {
	return m.headers.SetAll(fields)
}

func (m *Message) SetHeader(name string, value FieldValue) error {
	return m.headers.Set(name, value)
}

func (m *Message) AddHeader(name string, value FieldValue) error {
	return m.headers.Add(name, value)
}

func (m *Message) RemoveHeader(name string) error {
	return m.headers.Remove(name)
}

func (m *Message) Body() Body { return m.body }

// SetBody replaces the body. The previous body is not closed.
func (m *Message) SetBody(body Body) { m.body = body }

func (m *Message) WithProtocolVersion(version string) (*Message, error) {
	return withProtocolVersion[Message](m, version)
}

func (m *Message) WithHeaders(fields []Field) (*Message, error) {
	return withHeaders[Message](m, fields)
}

func (m *Message) WithHeader(name string, value FieldValue) (*Message, error) {
	return withHeader[Message](m, name, value)
}

func (m *Message) WithAddedHeader(name string, value FieldValue) (*Message, error) {
	return withAddedHeader[Message](m, name, value)
}

func (m *Message) WithoutHeader(name string) (*Message, error) {
	return withoutHeader[Message](m, name)
}

func (m *Message) WithBody(body Body) *Message {
	return withBody[Message](m, body)
}

func (m *Message) message() *Message { return m }

func (m *Message) clone() *Message {
	c := *m
	c.headers = m.headers.clone()
	return &c
}
