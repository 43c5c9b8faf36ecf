package semantic

import (
	"testing"

	"http-message/application/util/uri"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestNewRequest(t *testing.T) {
	r, err := NewRequest("get", "http://example.com:8080/a?b=c", MessageOptions{})
	require.NoError(t, err)

	assert.Equal(t, Method("get"), r.Method())
	assert.Equal(t, "http://example.com:8080/a?b=c", r.URI().String())
	assert.Equal(t, "example.com", r.HeaderLine("Host"))
	assert.Equal(t, "1.1", r.ProtocolVersion())
}

func TestNewRequestInvalid(t *testing.T) {
	testcases := []struct {
		desc   string
		method Method
		rawURI string
		err    error
	}{
		{desc: "unknown method", method: "FETCH", rawURI: "/", err: ErrInvalidMethod},
		{desc: "empty method", method: "", rawURI: "/", err: ErrInvalidMethod},
		{desc: "malformed uri", method: "GET", rawURI: "http://[::1", err: uri.ErrInvalidURI},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := NewRequest(tc.method, tc.rawURI, MessageOptions{})
			assert.True(t, errors.Is(err, tc.err))
		})
	}
}

func TestRequestTarget(t *testing.T) {
	testcases := []struct {
		rawURI string
		target string
	}{
		{rawURI: "http://x.com", target: "/"},
		{rawURI: "http://x.com/", target: "/"},
		{rawURI: "http://x.com/a?b=c", target: "/a?b=c"},
		{rawURI: "http://x.com?b=c", target: "/?b=c"},
		{rawURI: "http://x.com/a?", target: "/a"},
		{rawURI: "http://x.com/a#frag", target: "/a"},
		{rawURI: "", target: "/"},
	}

	for _, tc := range testcases {
		t.Run(tc.rawURI, func(t *testing.T) {
			r, err := NewRequest(MethodGet, tc.rawURI, MessageOptions{})
			require.NoError(t, err)
			assert.Equal(t, tc.target, r.RequestTarget())
		})
	}
}

func TestRequestTargetOverride(t *testing.T) {
	r, err := NewRequest(MethodOptions, "http://x.com/a", MessageOptions{})
	require.NoError(t, err)

	r.SetRequestTarget("*")
	assert.Equal(t, "*", r.RequestTarget())

	next := r.WithRequestTarget("example.com:443")
	assert.NotSame(t, r, next)
	assert.Equal(t, "example.com:443", next.RequestTarget())
	assert.Equal(t, "*", r.RequestTarget())

	assert.Same(t, next, next.WithRequestTarget("example.com:443"))

	r.SetRequestTarget("")
	assert.Equal(t, "/a", r.RequestTarget())
}

func TestRequestMethod(t *testing.T) {
	r, err := NewRequest(MethodGet, "/", MessageOptions{})
	require.NoError(t, err)

	same, err := r.WithMethod("GET")
	require.NoError(t, err)
	assert.Same(t, r, same)

	next, err := r.WithMethod("post")
	require.NoError(t, err)
	assert.NotSame(t, r, next)
	assert.Equal(t, Method("post"), next.Method())
	assert.Equal(t, MethodGet, r.Method())

	_, err = r.WithMethod("BREW")
	assert.True(t, errors.Is(err, ErrInvalidMethod))

	err = r.SetMethod("brew")
	assert.True(t, errors.Is(err, ErrInvalidMethod))
	assert.Equal(t, MethodGet, r.Method())
}

func TestRequestWithHeaderReturnsRequest(t *testing.T) {
	r, err := NewRequest(MethodGet, "http://x.com/a", MessageOptions{})
	require.NoError(t, err)

	next, err := r.WithHeader("Accept", Single("*/*"))
	require.NoError(t, err)

	assert.NotSame(t, r, next)
	assert.Equal(t, r.Method(), next.Method())
	assert.Equal(t, r.URI(), next.URI())
	assert.Equal(t, "*/*", next.HeaderLine("Accept"))
	assert.False(t, r.HasHeader("Accept"))
	assert.Same(t, r.Body(), next.Body())

	same, err := next.WithHeader("Accept", Single("*/*"))
	require.NoError(t, err)
	assert.Same(t, next, same)

	without, err := next.WithoutHeader("accept")
	require.NoError(t, err)
	assert.False(t, without.HasHeader("Accept"))
	assert.True(t, next.HasHeader("Accept"))
}

type RequestHostTestSuite struct {
	suite.Suite

	withHost    uri.URI
	withoutHost uri.URI
}

func TestRequestHostTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHostTestSuite))
}

func (s *RequestHostTestSuite) SetupTest() {
	var err error

	s.withHost, err = uri.Parse("http://new.example.com/path")
	s.Require().NoError(err)

	s.withoutHost, err = uri.Parse("/path")
	s.Require().NoError(err)
}

func (s *RequestHostTestSuite) request(host string) *Request {
	var fields []Field
	if host != "" {
		fields = append(fields, Field{Name: "Host", Value: Single(host)})
	}

	r, err := NewRequest(MethodGet, "/", MessageOptions{Headers: fields})
	s.Require().NoError(err)
	return r
}

func (s *RequestHostTestSuite) TestOverwritesHost() {
	r := s.request("old.example.com")

	r.SetURI(s.withHost, false)

	s.Equal("new.example.com", r.HeaderLine("Host"))
}

func (s *RequestHostTestSuite) TestPreservesNonEmptyHost() {
	r := s.request("old.example.com")

	r.SetURI(s.withHost, true)

	s.Equal("old.example.com", r.HeaderLine("Host"))
}

func (s *RequestHostTestSuite) TestPreserveFillsMissingHost() {
	r := s.request("")
	s.Require().False(r.HasHeader("Host"))

	r.SetURI(s.withHost, true)

	s.Equal("new.example.com", r.HeaderLine("Host"))
}

func (s *RequestHostTestSuite) TestPreserveFillsEmptyHost() {
	r := s.request("")
	s.Require().NoError(r.SetHeader("host", Single("")))

	r.SetURI(s.withHost, true)

	s.Equal("new.example.com", r.HeaderLine("Host"))
	s.Equal([]string{"Host"}, r.HeaderNames())
}

func (s *RequestHostTestSuite) TestURIWithoutHostKeepsHost() {
	for _, preserve := range []bool{false, true} {
		r := s.request("old.example.com")

		r.SetURI(s.withoutHost, preserve)

		s.Equal("old.example.com", r.HeaderLine("Host"))
	}
}

func (s *RequestHostTestSuite) TestURIWithoutHostNoHeader() {
	for _, preserve := range []bool{false, true} {
		r := s.request("")

		r.SetURI(s.withoutHost, preserve)

		s.False(r.HasHeader("Host"))
	}
}

func (s *RequestHostTestSuite) TestWithURICopies() {
	r := s.request("old.example.com")

	next := r.WithURI(s.withoutHost, false)
	s.NotSame(r, next)

	next = r.WithURI(s.withHost, false)
	s.NotSame(r, next)
	s.Equal("new.example.com", next.HeaderLine("Host"))
	s.Equal("old.example.com", r.HeaderLine("Host"))
	s.Equal("/", r.URI().String())
	s.Equal("http://new.example.com/path", next.URI().String())
}
