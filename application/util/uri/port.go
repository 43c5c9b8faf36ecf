package uri

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	PortMin = 0
	PortMax = 65535
)

var standardPorts = map[string]uint16{
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"smtp":   25,
	"dns":    53,
	"tftp":   69,
	"http":   80,
	"sftp":   115,
	"https":  443,
}

// StandardPort returns the well-known port of scheme.
// Lookup is case-insensitive. ok is false for unknown schemes.
func StandardPort(scheme string) (port int, ok bool) {
	p, ok := standardPorts[strings.ToLower(scheme)]
	return int(p), ok
}

func assertValidPort(port int) error {
	if port < PortMin || port > PortMax {
		return errors.Wrapf(ErrInvalidPort, "%d", port)
	}
	return nil
}
