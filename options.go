package rdfxsd

import (
	"fmt"
	"log/slog"
	"net/url"
)

// DefaultNamespace is the XML Schema datatypes namespace.
const DefaultNamespace = "http://www.w3.org/2001/XMLSchema#"

// RegistryOptions configures registry construction.
type RegistryOptions struct {
	logger    *slog.Logger
	namespace string
}

type resolvedRegistryOptions struct {
	logger    *slog.Logger
	namespace string
}

// NewRegistryOptions returns a default, valid registry options value.
func NewRegistryOptions() RegistryOptions {
	return RegistryOptions{}
}

// WithNamespace sets the namespace datatype names are resolved against
// (empty uses DefaultNamespace).
func (o RegistryOptions) WithNamespace(namespace string) RegistryOptions {
	o.namespace = namespace
	return o
}

// WithLogger sets the logger for registry lifecycle events (nil discards).
func (o RegistryOptions) WithLogger(logger *slog.Logger) RegistryOptions {
	o.logger = logger
	return o
}

// Validate validates registry options values.
func (o RegistryOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o RegistryOptions) withDefaults() (resolvedRegistryOptions, error) {
	namespace := o.namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	parsed, err := url.Parse(namespace)
	if err != nil {
		return resolvedRegistryOptions{}, fmt.Errorf("namespace: %w", err)
	}
	if parsed.Scheme == "" {
		return resolvedRegistryOptions{}, fmt.Errorf("namespace %q: not an absolute URI", namespace)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return resolvedRegistryOptions{namespace: namespace, logger: logger}, nil
}
