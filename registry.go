package rdfxsd

import (
	"errors"
	"fmt"
	"log/slog"

	xsderrors "github.com/jacoelho/rdfxsd/errors"
)

// Registry maps datatypes to identifiers of a URISpace and back.
//
// A Registry is read-only between NewRegistry and Close, so lookups may run
// concurrently. Close must not run concurrently with lookups.
type Registry struct {
	space     URISpace
	logger    *slog.Logger
	namespace string
	uris      [lastType + 1]URI
	closed    bool
}

// ErrRegistryClosed is returned by Close on a registry that is already closed.
var ErrRegistryClosed = errors.New("datatype registry already closed")

// NewRegistry resolves one identifier per supported datatype. If any
// resolution fails, identifiers resolved so far are released and an
// *xsderrors.Initialization is returned.
func NewRegistry(space URISpace, opts RegistryOptions) (*Registry, error) {
	if space == nil {
		return nil, fmt.Errorf("new registry: nil URI space")
	}
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("registry options: %w", err)
	}
	r := &Registry{
		space:     space,
		logger:    resolved.logger,
		namespace: resolved.namespace,
	}
	for _, t := range Types() {
		u, err := space.Resolve(r.namespace, t.String())
		if err == nil && u == nil {
			err = fmt.Errorf("nil identifier for %s", t)
		}
		if err != nil {
			r.release()
			r.logger.Debug("datatype registry build failed", "datatype", t.String(), "error", err)
			return nil, &xsderrors.Initialization{Datatype: t.String(), Err: err}
		}
		r.uris[t] = u
	}
	r.logger.Debug("datatype registry built", "namespace", r.namespace, "datatypes", len(Types()))
	return r, nil
}

// Close releases every identifier held by the registry. Later lookups report
// unknown datatypes.
func (r *Registry) Close() error {
	if r == nil {
		return fmt.Errorf("close registry: nil registry")
	}
	if r.closed {
		return ErrRegistryClosed
	}
	r.release()
	r.closed = true
	r.logger.Debug("datatype registry closed", "namespace", r.namespace)
	return nil
}

func (r *Registry) release() {
	for t, u := range r.uris {
		if u == nil {
			continue
		}
		r.space.Release(u)
		r.uris[t] = nil
	}
}

// URI returns the identifier of t.
func (r *Registry) URI(t Type) (URI, bool) {
	if r == nil || !t.Known() {
		return nil, false
	}
	u := r.uris[t]
	return u, u != nil
}

// TypeOf returns the datatype identified by u, or TypeUnknown.
func (r *Registry) TypeOf(u URI) Type {
	if r == nil || u == nil {
		return TypeUnknown
	}
	for t := firstType; t <= lastType; t++ {
		if known := r.uris[t]; known != nil && r.space.Equal(u, known) {
			return t
		}
	}
	return TypeUnknown
}

// IsDatatypeURI reports whether u identifies a supported datatype.
func (r *Registry) IsDatatypeURI(u URI) bool {
	return r.TypeOf(u) != TypeUnknown
}

// Validate reports whether lexical is a legal lexical form of t. A closed
// registry knows no datatypes and accepts nothing.
func (r *Registry) Validate(t Type, lexical string) bool {
	if r == nil || r.closed {
		return false
	}
	return Validate(t, lexical)
}

// ValidateURI validates lexical against the datatype identified by u.
// Identifiers of unsupported datatypes impose no lexical constraint.
func (r *Registry) ValidateURI(u URI, lexical string) bool {
	t := r.TypeOf(u)
	if t == TypeUnknown {
		return true
	}
	return Validate(t, lexical)
}

// Label returns the local name of t, or "" for unsupported tags.
func (r *Registry) Label(t Type) string {
	if !t.Known() {
		return ""
	}
	return t.String()
}
