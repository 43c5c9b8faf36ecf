package iolib

import "github.com/pkg/errors"

var (
	ErrDetached    = errors.New("stream is detached or closed")
	ErrNotReadable = errors.New("stream is not readable")
	ErrNotWritable = errors.New("stream is not writable")
	ErrNotSeekable = errors.New("stream is not seekable")
	ErrInvalidMode = errors.New("invalid stream mode")
)
