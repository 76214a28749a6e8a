package sources

import "regexp"

// Handler resolves an extracted source id to an ordered page list.
type Handler func(id string) ([]string, error)

type rule struct {
	pattern *regexp.Regexp
	handler Handler
}

// Resolver maps an opaque source descriptor to the fetcher responsible for
// it. Rules are tried in registration order and the first matching pattern
// wins; new source kinds plug in via Register without touching call sites.
type Resolver struct {
	rules []rule
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Register appends a pattern/handler pair. The pattern's first capture group
// is the source id handed to the handler.
func (r *Resolver) Register(pattern *regexp.Regexp, handler Handler) {
	r.rules = append(r.rules, rule{pattern: pattern, handler: handler})
}

// Resolve turns a descriptor into page URLs via the first matching rule.
func (r *Resolver) Resolve(descriptor string) ([]string, error) {
	for _, rule := range r.rules {
		m := rule.pattern.FindStringSubmatch(descriptor)
		if m == nil {
			continue
		}
		id := ""
		if len(m) > 1 {
			id = m[1]
		}
		return rule.handler(id)
	}
	return nil, &UnsupportedSourceError{Descriptor: descriptor}
}

// AlbumPattern recognizes descriptors of the form .../album/chapter/{id}/
// and delegates them to the imgur fetcher.
var AlbumPattern = regexp.MustCompile(`/album/chapter/([^/]+)/?$`)

// AlbumID extracts the album id from an album descriptor, if it is one.
func AlbumID(descriptor string) (string, bool) {
	m := AlbumPattern.FindStringSubmatch(descriptor)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// AlbumDescriptor builds the canonical descriptor for an album id.
func AlbumDescriptor(id string) string {
	return "/album/chapter/" + id + "/"
}

// NewDefaultResolver wires the album rule against the given fetcher.
func NewDefaultResolver(album AlbumSource) *Resolver {
	r := NewResolver()
	r.Register(AlbumPattern, album.FetchAlbum)
	return r
}
