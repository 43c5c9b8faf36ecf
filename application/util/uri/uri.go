package uri

import (
	"strconv"
	"strings"
)

// URI is an immutable-by-convention URI value.
// With* methods return a modified copy. Set* methods mutate in place.
type URI struct {
	scheme   string
	user     string
	password string
	host     string
	path     string
	query    string
	fragment string

	// NOTE: RFC allows a port of any length. We keep the practical range.
	// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.3
	port    uint16
	hasPort bool
}

func (u URI) Scheme() string   { return strings.ToLower(u.scheme) }
func (u URI) Host() string     { return strings.ToLower(u.host) }
func (u URI) User() string     { return u.user }
func (u URI) Password() string { return u.password }
func (u URI) Path() string     { return u.path }
func (u URI) Query() string    { return u.query }
func (u URI) Fragment() string { return u.fragment }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.2
func (u URI) IsRelativeRef() bool { return u.scheme == "" }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.3
func (u URI) IsAbsoluteURI() bool { return u.scheme != "" && u.fragment == "" }

// Port returns the port unless it is the standard port of the scheme.
func (u URI) Port() (port int, ok bool) {
	if !u.hasPort {
		return 0, false
	}
	if std, known := StandardPort(u.scheme); known && std == int(u.port) {
		return 0, false
	}
	return int(u.port), true
}

// RawPort returns the stored port, even if it is the standard one.
func (u URI) RawPort() (port int, ok bool) {
	return int(u.port), u.hasPort
}

// UserInfo is empty unless user is set.
// Password is never surfaced on its own.
func (u URI) UserInfo() string {
	if u.user == "" {
		return ""
	}
	if u.password == "" {
		return u.user
	}
	return u.user + ":" + u.password
}

// Authority returns [userinfo "@"] host [":" port], or "" if host is empty.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2
func (u URI) Authority() string {
	host := u.Host()
	if host == "" {
		return ""
	}

	b := new(strings.Builder)
	if userInfo := u.UserInfo(); userInfo != "" {
		b.WriteString(userInfo)
		b.WriteByte('@')
	}
	b.WriteString(host)
	if port, ok := u.Port(); ok {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(port))
	}

	return b.String()
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.3
func (u URI) String() string {
	b := new(strings.Builder)
	if scheme := u.Scheme(); scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}

	authority := u.Authority()
	if authority != "" {
		b.WriteString("//")
		b.WriteString(authority)
	}

	path := u.path
	switch {
	case authority != "" && path != "" && path[0] != '/':
		// Rootless path after an authority must be prefixed by "/".
		path = "/" + path
	case authority == "" && strings.HasPrefix(path, "//"):
		// Otherwise the path would be read as an authority.
		path = "/" + strings.TrimLeft(path, "/")
	}
	b.WriteString(path)

	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}

	return b.String()
}

func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u URI) WithScheme(scheme string) URI {
	u.scheme = scheme
	return u
}

func (u URI) WithHost(host string) URI {
	u.host = host
	return u
}

func (u URI) WithPath(path string) URI {
	u.path = path
	return u
}

func (u URI) WithQuery(query string) URI {
	u.query = query
	return u
}

func (u URI) WithFragment(fragment string) URI {
	u.fragment = fragment
	return u
}

// WithUserInfo sets user and password together.
// Pass an empty password to drop it.
func (u URI) WithUserInfo(user, password string) URI {
	u.user = user
	u.password = password
	return u
}

func (u URI) WithPort(port int) (URI, error) {
	if _, err := u.SetPort(port); err != nil {
		return URI{}, err
	}
	return u, nil
}

func (u URI) WithoutPort() URI {
	return *u.ClearPort()
}

// SetPort sets the port in place and returns u for chaining.
// On error u is left untouched.
func (u *URI) SetPort(port int) (*URI, error) {
	if err := assertValidPort(port); err != nil {
		return nil, err
	}
	u.port, u.hasPort = uint16(port), true
	return u, nil
}

func (u *URI) ClearPort() *URI {
	u.port, u.hasPort = 0, false
	return u
}
