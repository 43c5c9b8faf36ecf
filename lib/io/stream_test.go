package iolib

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type StreamTestSuite struct {
	suite.Suite

	clock *clock.Mock
}

func TestStreamTestSuite(t *testing.T) {
	suite.Run(t, new(StreamTestSuite))
}

func (s *StreamTestSuite) SetupTest() {
	s.clock = clock.NewMock()
}

func (s *StreamTestSuite) TearDownTest() {
	goleak.VerifyNone(s.T())
}

func (s *StreamTestSuite) memory(content string) *Stream {
	return NewMemoryStream([]byte(content), MemoryOptions{Clock: s.clock})
}

func (s *StreamTestSuite) TestMemoryStreamStartsAtBeginning() {
	stream := s.memory("Hello, World!")

	pos, err := stream.Tell()
	s.Require().NoError(err)
	s.Equal(int64(0), pos)

	content, err := stream.Contents()
	s.Require().NoError(err)
	s.Equal("Hello, World!", content)
	s.True(stream.EOF())
}

func (s *StreamTestSuite) TestMemoryStreamCapabilities() {
	stream := s.memory("")

	s.True(stream.IsReadable())
	s.True(stream.IsWritable())
	s.True(stream.IsSeekable())

	mode, ok := stream.Metadata("mode")
	s.True(ok)
	s.Equal("w+b", mode)

	kind, ok := stream.Metadata("stream_type")
	s.True(ok)
	s.Equal("MEMORY", kind)

	_, ok = stream.Metadata("unknown")
	s.False(ok)
}

func (s *StreamTestSuite) TestWriteSeekRead() {
	stream := s.memory("")

	n, err := stream.Write([]byte("abcdef"))
	s.Require().NoError(err)
	s.Equal(6, n)

	pos, err := stream.Seek(2, io.SeekStart)
	s.Require().NoError(err)
	s.Equal(int64(2), pos)

	buf := make([]byte, 3)
	n, err = stream.Read(buf)
	s.Require().NoError(err)
	s.Equal("cde", string(buf[:n]))

	_, err = stream.Seek(-1, io.SeekEnd)
	s.Require().NoError(err)
	_, err = stream.Write([]byte("XYZ"))
	s.Require().NoError(err)

	s.Equal("abcdeXYZ", stream.String())

	size, ok := stream.Size()
	s.True(ok)
	s.Equal(int64(8), size)
}

func (s *StreamTestSuite) TestEOFResetsOnSeek() {
	stream := s.memory("x")

	_, err := io.ReadAll(stream)
	s.Require().NoError(err)

	_, err = stream.Read(make([]byte, 1))
	s.Equal(io.EOF, err)
	s.True(stream.EOF())

	s.Require().NoError(stream.Rewind())
	s.False(stream.EOF())
}

func (s *StreamTestSuite) TestModTimeFollowsClock() {
	stream := s.memory("a")
	created := s.clock.Now()

	s.clock.Add(time.Minute)
	_, err := stream.Write([]byte("b"))
	s.Require().NoError(err)

	info, err := stream.Stat()
	s.Require().NoError(err)
	s.Equal(created.Add(time.Minute), info.ModTime())
	s.Equal(int64(1), info.Size())
}

func (s *StreamTestSuite) TestReadLine() {
	stream := s.memory("first\r\nsecond\r\nthird")

	line, err := stream.ReadLine("\r\n", 0)
	s.Require().NoError(err)
	s.Equal("first", line)

	line, err = stream.ReadLine("\r\n", 3)
	s.Require().NoError(err)
	s.Equal("sec", line)

	line, err = stream.ReadLine("\r\n", 0)
	s.Require().NoError(err)
	s.Equal("ond", line)

	line, err = stream.ReadLine("\r\n", 0)
	s.Require().NoError(err)
	s.Equal("third", line)
	s.True(stream.EOF())
}

func (s *StreamTestSuite) TestCloseDetaches() {
	stream := s.memory("data")

	s.Require().NoError(stream.Close())
	s.True(stream.EOF())
	s.False(stream.IsReadable())
	s.Empty(stream.AllMetadata())
	s.Equal("", stream.String())

	_, err := stream.Read(make([]byte, 1))
	s.True(errors.Is(err, ErrDetached))
	_, err = stream.Write([]byte("x"))
	s.True(errors.Is(err, ErrDetached))
	_, err = stream.Tell()
	s.True(errors.Is(err, ErrDetached))

	// Closing twice is a no-op.
	s.NoError(stream.Close())
}

func (s *StreamTestSuite) TestDetachReturnsResource() {
	stream := s.memory("data")

	res := stream.Detach()
	s.Require().NotNil(res)
	s.Nil(stream.Detach())

	b, err := io.ReadAll(res)
	s.Require().NoError(err)
	s.Equal("data", string(b))
	s.NoError(res.Close())
}

func (s *StreamTestSuite) TestFileStream() {
	name := filepath.Join(s.T().TempDir(), "body.txt")

	w, err := OpenFile(name, "w")
	s.Require().NoError(err)
	s.False(w.IsReadable())

	_, err = w.Write([]byte("line one\nline two\n"))
	s.Require().NoError(err)

	_, err = w.Read(make([]byte, 1))
	s.True(errors.Is(err, ErrNotReadable))
	s.Require().NoError(w.Close())

	r, err := OpenFile(name, "r")
	s.Require().NoError(err)
	defer r.Close()

	uri, ok := r.Metadata("uri")
	s.True(ok)
	s.Equal(name, uri)

	_, err = r.Write([]byte("nope"))
	s.True(errors.Is(err, ErrNotWritable))

	line, err := r.ReadLine("", 0)
	s.Require().NoError(err)
	s.Equal("line one", line)

	pos, err := r.Tell()
	s.Require().NoError(err)
	s.Equal(int64(len("line one\n")), pos)

	size, ok := r.Size()
	s.True(ok)
	s.Equal(int64(18), size)
}

func (s *StreamTestSuite) TestFromFile() {
	name := filepath.Join(s.T().TempDir(), "append.txt")
	s.Require().NoError(os.WriteFile(name, []byte("head:"), 0o644))

	f, err := os.OpenFile(name, os.O_RDWR|os.O_APPEND, 0)
	s.Require().NoError(err)

	stream, err := FromFile(f, "a+")
	s.Require().NoError(err)
	defer stream.Close()

	_, err = stream.Write([]byte("tail"))
	s.Require().NoError(err)
	s.Equal("head:tail", stream.String())

	_, err = FromFile(f, "?")
	s.True(errors.Is(err, ErrInvalidMode))
}

func (s *StreamTestSuite) TestOpenMissingFile() {
	_, err := OpenFile(filepath.Join(s.T().TempDir(), "missing"), "r")
	s.Error(err)
	s.True(errors.Is(err, os.ErrNotExist))
}
