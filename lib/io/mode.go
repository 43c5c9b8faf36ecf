package iolib

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Mode is an fopen-style access mode such as "r", "w+" or "ab".
type Mode struct {
	raw string

	readable bool
	writable bool
	flag     int
}

// ParseMode parses an fopen-style mode string.
// 'b' and 't' are accepted and ignored.
func ParseMode(raw string) (Mode, error) {
	m := Mode{raw: raw}

	base := strings.NewReplacer("b", "", "t", "").Replace(raw)
	plus := strings.HasSuffix(base, "+")
	base = strings.TrimSuffix(base, "+")

	switch base {
	case "r":
		m.readable = true
		m.flag = os.O_RDONLY
	case "w":
		m.writable = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		m.writable = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "x":
		m.writable = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	case "c":
		m.writable = true
		m.flag = os.O_WRONLY | os.O_CREATE
	default:
		return Mode{}, errors.Wrapf(ErrInvalidMode, "%q", raw)
	}

	if plus {
		m.readable, m.writable = true, true
		m.flag = m.flag&^(os.O_RDONLY|os.O_WRONLY) | os.O_RDWR
	}

	return m, nil
}

func (m Mode) String() string { return m.raw }
func (m Mode) Readable() bool { return m.readable }
func (m Mode) Writable() bool { return m.writable }
func (m Mode) OpenFlag() int  { return m.flag }
