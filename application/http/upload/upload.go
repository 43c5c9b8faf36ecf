// Package upload models a file received in a multipart request.
package upload

import (
	"io"
	"os"

	iolib "http-message/lib/io"

	"github.com/pkg/errors"
)

var (
	ErrInvalidStatus = errors.New("invalid upload error code")
	ErrAlreadyMoved  = errors.New("uploaded file has already been moved")
	ErrUploadFailed  = errors.New("there was an error uploading the file")
	ErrEmptyTarget   = errors.New("destination path must be a non-empty string")
	ErrNoStream      = errors.New("could not create a stream from data")
)

type Options struct {
	// Size as reported by the client.
	Size            int64
	Error           ErrorCode
	ClientFilename  string
	ClientMediaType string
}

// File is either backed by a path on disk or by a stream.
// It can be moved at most once.
type File struct {
	path   string
	stream *iolib.Stream

	size            int64
	code            ErrorCode
	clientFilename  string
	clientMediaType string

	moved bool
}

// FromPath refers to an uploaded file already stored at path.
func FromPath(path string, opts Options) (*File, error) {
	f, err := newFile(opts)
	if err != nil {
		return nil, err
	}
	if f.IsOK() {
		f.path = path
	}
	return f, nil
}

// FromStream refers to an upload held in stream. A nil stream is rejected
// for a successful upload.
func FromStream(stream *iolib.Stream, opts Options) (*File, error) {
	if stream == nil && opts.Error == OK {
		return nil, errors.Wrap(ErrNoStream, "nil stream")
	}

	f, err := newFile(opts)
	if err != nil {
		return nil, err
	}
	if f.IsOK() {
		f.stream = stream
	}
	return f, nil
}

func newFile(opts Options) (*File, error) {
	if !opts.Error.IsValid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "%d", int(opts.Error))
	}

	return &File{
		size:            opts.Size,
		code:            opts.Error,
		clientFilename:  opts.ClientFilename,
		clientMediaType: opts.ClientMediaType,
	}, nil
}

// Stream returns the backing stream, opening a path-backed file for reading.
// The caller owns a stream opened from a path.
func (f *File) Stream() (*iolib.Stream, error) {
	if f.moved {
		return nil, ErrAlreadyMoved
	}
	if f.stream != nil {
		return f.stream, nil
	}
	if f.path == "" {
		return nil, errors.Wrap(ErrUploadFailed, f.code.String())
	}
	return iolib.OpenFile(f.path, "r")
}

// MoveTo relocates the upload to target. A path-backed file is renamed;
// a stream is copied from its beginning into a newly created file.
func (f *File) MoveTo(target string) error {
	if !f.IsOK() {
		return errors.Wrap(ErrUploadFailed, f.code.String())
	}
	if f.moved {
		return ErrAlreadyMoved
	}
	if target == "" {
		return ErrEmptyTarget
	}

	var err error
	if f.path != "" {
		err = os.Rename(f.path, target)
	} else {
		err = f.copyTo(target)
	}
	if err != nil {
		return errors.Wrapf(ErrUploadFailed, "moving to %q: %s", target, err)
	}

	f.moved = true
	return nil
}

func (f *File) copyTo(target string) error {
	if f.stream.IsSeekable() {
		if err := f.stream.Rewind(); err != nil {
			return err
		}
	}

	dst, err := iolib.OpenFile(target, "w")
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, f.stream); err != nil {
		dst.Close()
		return errors.Wrap(err, "copying stream")
	}
	return dst.Close()
}

func (f *File) Size() int64             { return f.size }
func (f *File) Error() ErrorCode        { return f.code }
func (f *File) ClientFilename() string  { return f.clientFilename }
func (f *File) ClientMediaType() string { return f.clientMediaType }
func (f *File) IsOK() bool              { return f.code == OK }
func (f *File) IsMoved() bool           { return f.moved }
