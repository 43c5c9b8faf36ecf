package uri

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse decomposes rawURI into its components.
// Components are not unescaped. A malformed scheme, authority or port
// results in a [*ParseError] matching [ErrInvalidURI].
func Parse(rawURI string) (URI, error) {
	u, err := parse(rawURI)
	if err != nil {
		return URI{}, &ParseError{Input: rawURI, cause: err}
	}
	return u, nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#appendix-B
func parse(raw string) (uri URI, err error) {
	if containsCTL(raw) {
		return URI{}, errors.New("URI should not contain CTL bytes")
	}

	scheme, rest, err := cutScheme(raw)
	if err != nil {
		return URI{}, errors.Wrap(err, "getting scheme")
	}
	uri.scheme = scheme

	if strings.HasPrefix(rest, "//") {
		var authorityRaw string
		authorityRaw, rest = rest[2:], ""
		if i := strings.IndexAny(authorityRaw, "/?#"); i >= 0 {
			authorityRaw, rest = authorityRaw[:i], authorityRaw[i:]
		}

		if err := uri.parseAuthority(authorityRaw); err != nil {
			return URI{}, errors.Wrap(err, "parsing authority")
		}
	}

	uri.path, uri.query, uri.fragment = splitPathQueryFrag(rest)

	return uri, nil
}

// cutScheme cuts scheme from raw. If scheme is not valid, it returns an error.
// A ':' appearing after '/', '?' or '#' doesn't delimit a scheme.
func cutScheme(raw string) (scheme, rest string, err error) {
	idx := strings.IndexAny(raw, ":/?#")
	if idx == 0 && raw[0] == ':' {
		// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.2
		return "", "", errors.New("first path segment of a relative reference cannot contain ':'")
	}
	if idx <= 0 || raw[idx] != ':' {
		// Relative reference.
		return "", raw, nil
	}

	scheme, rest = raw[:idx], raw[idx+1:]
	if err := assertValidScheme(scheme); err != nil {
		return "", "", err
	}

	return scheme, rest, nil
}

func (u *URI) parseAuthority(raw string) error {
	hostPort := raw
	if i := strings.LastIndexByte(raw, '@'); i >= 0 {
		userInfo := raw[:i]
		if !isValidUserInfo(userInfo) {
			return errors.New("user information is not valid")
		}
		u.user, u.password, _ = strings.Cut(userInfo, ":")
		hostPort = raw[i+1:]
	}

	host, portPart, err := getHostPort(hostPort)
	if err != nil {
		return errors.Wrap(err, "parsing host")
	}

	port, hasPort, err := parsePort(portPart)
	if err != nil {
		return errors.Wrap(err, "parsing port")
	}

	if host == "" && (hasPort || u.user != "") {
		return errors.New("authority with userinfo or port requires a host")
	}

	u.host = host
	u.port, u.hasPort = port, hasPort

	return nil
}

func getHostPort(raw string) (host string, portPart string, err error) {
	if strings.HasPrefix(raw, "[") {
		// This is IP Literal.
		idx := strings.LastIndex(raw, "]")
		if idx < 0 {
			return "", "", errors.New("missing ']' in IP Literal")
		}

		host = raw[:idx+1]
		portPart = raw[idx+1:]
	} else {
		// ipv4 or reg-name.
		host = raw
		if idx := strings.LastIndex(raw, ":"); idx >= 0 {
			host = raw[:idx]
			portPart = raw[idx:]
		}
	}

	if err := assertValidHost(host); err != nil {
		return "", "", errors.Wrap(err, "host is not valid")
	}

	return host, portPart, nil
}

// An empty port after ':' is allowed and means no port.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.3
func parsePort(s string) (port uint16, hasPort bool, err error) {
	if s == "" {
		return 0, false, nil
	}

	if s[0] != ':' {
		return 0, false, errors.New("colon delimiter not found on port")
	}

	s = s[1:]
	if s == "" {
		return 0, false, nil
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false, errors.Errorf("port contains non-digit %q", s[i])
		}
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false, errors.Wrap(ErrInvalidPort, s)
	}

	return uint16(n), true, nil
}

func splitPathQueryFrag(raw string) (path, query, frag string) {
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		frag = raw[idx+1:]
		raw = raw[:idx]
	}

	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		query = raw[idx+1:]
		raw = raw[:idx]
	}

	path = raw
	return
}
