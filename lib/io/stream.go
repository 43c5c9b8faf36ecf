package iolib

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// Resource is the handle a [Stream] wraps. [*os.File] satisfies it.
type Resource interface {
	io.ReadWriteSeeker
	io.Closer
	Stat() (fs.FileInfo, error)
}

// Stream is a readable, writable and seekable view over a [Resource],
// restricted by the mode it was opened with.
// Stream is not safe for concurrent use.
type Stream struct {
	res  Resource
	mode Mode
	uri  string
	kind string

	seekable bool
	eof      bool
}

const kindFile = "STDIO"

// OpenFile opens name with an fopen-style mode.
func OpenFile(name, mode string) (*Stream, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(name, m.OpenFlag(), 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", name)
	}

	return fromFile(f, m), nil
}

// FromFile wraps an already opened file. mode must match how f was opened.
func FromFile(f *os.File, mode string) (*Stream, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return fromFile(f, m), nil
}

func fromFile(f *os.File, m Mode) *Stream {
	_, seekErr := f.Seek(0, io.SeekCurrent)
	return &Stream{
		res:      f,
		mode:     m,
		uri:      f.Name(),
		kind:     kindFile,
		seekable: seekErr == nil,
	}
}

func (s *Stream) IsReadable() bool { return s.res != nil && s.mode.Readable() }
func (s *Stream) IsWritable() bool { return s.res != nil && s.mode.Writable() }
func (s *Stream) IsSeekable() bool { return s.res != nil && s.seekable }

func (s *Stream) Read(p []byte) (n int, err error) {
	if s.res == nil {
		return 0, ErrDetached
	}
	if !s.mode.Readable() {
		return 0, ErrNotReadable
	}

	n, err = s.res.Read(p)
	if err == io.EOF {
		s.eof = true
	}
	return n, err
}

func (s *Stream) Write(p []byte) (n int, err error) {
	if s.res == nil {
		return 0, ErrDetached
	}
	if !s.mode.Writable() {
		return 0, ErrNotWritable
	}

	for n < len(p) {
		nn, err := s.res.Write(p[n:])
		n += nn
		if err != nil {
			return n, errors.Wrap(err, "writing to stream")
		}
	}
	return n, nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.res == nil {
		return 0, ErrDetached
	}
	if !s.seekable {
		return 0, ErrNotSeekable
	}

	pos, err := s.res.Seek(offset, whence)
	if err != nil {
		return 0, errors.Wrap(err, "seeking stream")
	}
	s.eof = false
	return pos, nil
}

func (s *Stream) Rewind() error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}

// Tell returns the current position.
func (s *Stream) Tell() (int64, error) {
	if s.res == nil {
		return 0, ErrDetached
	}
	pos, err := s.res.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "telling position")
	}
	return pos, nil
}

// EOF reports whether a read hit the end of the stream.
// A detached stream is always at EOF.
func (s *Stream) EOF() bool {
	return s.res == nil || s.eof
}

func (s *Stream) Stat() (fs.FileInfo, error) {
	if s.res == nil {
		return nil, ErrDetached
	}
	return s.res.Stat()
}

// Size returns the size in bytes, if known.
func (s *Stream) Size() (size int64, ok bool) {
	info, err := s.Stat()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// Metadata returns a single metadata value.
// Known keys: mode, seekable, uri, stream_type, eof.
func (s *Stream) Metadata(key string) (value any, ok bool) {
	value, ok = s.AllMetadata()[key]
	return
}

func (s *Stream) AllMetadata() map[string]any {
	if s.res == nil {
		return map[string]any{}
	}
	return map[string]any{
		"mode":        s.mode.String(),
		"seekable":    s.seekable,
		"uri":         s.uri,
		"stream_type": s.kind,
		"eof":         s.eof,
	}
}

// Contents reads the remainder of the stream.
func (s *Stream) Contents() (string, error) {
	b, err := io.ReadAll(s)
	if err != nil {
		return "", errors.Wrap(err, "reading contents")
	}
	return string(b), nil
}

// ReadLine reads until ending (excluded from the result), EOF, or max bytes.
// max <= 0 means no limit.
func (s *Stream) ReadLine(ending string, max int) (string, error) {
	if ending == "" {
		ending = "\n"
	}

	line := bytes.NewBuffer(nil)
	one := make([]byte, 1)
	for max <= 0 || line.Len() < max {
		n, err := s.Read(one)
		if n > 0 {
			line.WriteByte(one[0])
			if bytes.HasSuffix(line.Bytes(), []byte(ending)) {
				line.Truncate(line.Len() - len(ending))
				return line.String(), nil
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return line.String(), err
		}
	}

	return line.String(), nil
}

// String returns the whole content from the start, or "" if unreadable.
func (s *Stream) String() string {
	if !s.IsReadable() {
		return ""
	}
	if s.seekable {
		if err := s.Rewind(); err != nil {
			return ""
		}
	}
	content, err := s.Contents()
	if err != nil {
		return ""
	}
	return content
}

// Detach separates the underlying resource from the stream and returns it.
// The stream is unusable afterwards.
func (s *Stream) Detach() Resource {
	res := s.res
	s.res = nil
	return res
}

func (s *Stream) Close() error {
	res := s.Detach()
	if res == nil {
		return nil
	}
	return res.Close()
}
