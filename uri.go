package rdfxsd

import (
	"fmt"
	"net/url"
	"sync"
)

// URI is an opaque datatype identifier owned by a URISpace.
type URI interface {
	String() string
}

// URISpace creates, compares and releases datatype identifiers. The registry
// resolves one identifier per datatype when it is built and releases each of
// them exactly once.
type URISpace interface {
	Resolve(namespace, local string) (URI, error)
	Equal(a, b URI) bool
	Release(u URI)
}

// StdURISpace is a URISpace backed by net/url. It counts the identifiers it
// has handed out and not yet released.
type StdURISpace struct {
	live map[*stdURI]struct{}
	mu   sync.Mutex
}

type stdURI struct {
	raw string
}

func (u *stdURI) String() string {
	return u.raw
}

// NewURISpace returns an empty StdURISpace.
func NewURISpace() *StdURISpace {
	return &StdURISpace{live: make(map[*stdURI]struct{})}
}

// Resolve concatenates namespace and local and parses the result as an
// absolute URI.
func (s *StdURISpace) Resolve(namespace, local string) (URI, error) {
	if local == "" {
		return nil, fmt.Errorf("resolve %q: empty local name", namespace)
	}
	raw := namespace + local
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", raw, err)
	}
	if parsed.Scheme == "" {
		return nil, fmt.Errorf("resolve %q: not an absolute URI", raw)
	}
	u := &stdURI{raw: raw}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil {
		s.live = make(map[*stdURI]struct{})
	}
	s.live[u] = struct{}{}
	return u, nil
}

// Equal compares identifiers by their string form.
func (s *StdURISpace) Equal(a, b URI) bool {
	if a == nil || b == nil {
		return false
	}
	return a.String() == b.String()
}

// Release forgets an identifier handed out by Resolve. Identifiers from other
// spaces and repeated releases are ignored.
func (s *StdURISpace) Release(u URI) {
	su, ok := u.(*stdURI)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.live, su)
	s.mu.Unlock()
}

// Live returns the number of resolved identifiers not yet released.
func (s *StdURISpace) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}
