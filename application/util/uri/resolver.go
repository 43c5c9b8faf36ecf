package uri

import (
	"strings"

	"github.com/pkg/errors"
)

// RefResolver resolves URI references against a base URI.
// A component counts as defined when it is non-empty.
type RefResolver struct {
	base URI
}

func NewRefResolver(baseURI URI) (*RefResolver, error) {
	if baseURI.IsRelativeRef() {
		return nil, errors.New("baseURI cannot be relative ref")
	}
	return &RefResolver{base: baseURI}, nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.2
func (rr *RefResolver) Resolve(ref URI) (out URI) {
	out = ref

	if ref.scheme != "" {
		out.path = removeDotSegments(ref.path)
		return out
	}
	out.scheme = rr.base.scheme

	if ref.host != "" {
		out.path = removeDotSegments(ref.path)
		return out
	}
	out.user, out.password = rr.base.user, rr.base.password
	out.host = rr.base.host
	out.port, out.hasPort = rr.base.port, rr.base.hasPort

	switch {
	case ref.path == "":
		out.path = rr.base.path
		if ref.query == "" {
			out.query = rr.base.query
		}
	case strings.HasPrefix(ref.path, "/"):
		out.path = removeDotSegments(ref.path)
	default:
		out.path = removeDotSegments(mergePath(rr.base, ref))
	}

	return out
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.3
func mergePath(base, ref URI) string {
	if base.host != "" && base.path == "" {
		return "/" + ref.path
	}

	if idx := strings.LastIndexByte(base.path, '/'); idx >= 0 {
		return base.path[:idx+1] + ref.path
	}

	return ref.path
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.4
func removeDotSegments(path string) string {
	out := make([]string, 0, strings.Count(path, "/"))
	pop := func() {
		if len(out) > 0 {
			out = out[:len(out)-1]
		}
	}

	for len(path) > 0 {
		var found bool
		// Leading "../" or "./" is dropped.
		if path, found = strings.CutPrefix(path, "../"); found {
			continue
		}
		if path, found = strings.CutPrefix(path, "./"); found {
			continue
		}

		// "/./" or a trailing "/." collapses to "/".
		if path, found = strings.CutPrefix(path, "/./"); found {
			path = "/" + path
			continue
		} else if path == "/." {
			path = "/"
			continue
		}

		// "/../" or a trailing "/.." collapses to "/" and drops the last output segment.
		if path, found = strings.CutPrefix(path, "/../"); found {
			pop()
			path = "/" + path
			continue
		} else if path == "/.." {
			pop()
			path = "/"
			continue
		}

		if path == ".." || path == "." {
			break
		}

		// Move the first segment, including its leading "/", to the output.
		idx := strings.IndexByte(path[1:], '/') + 1
		if idx == 0 {
			idx = len(path)
		}
		out = append(out, path[:idx])
		path = path[idx:]
	}

	return strings.Join(out, "")
}
