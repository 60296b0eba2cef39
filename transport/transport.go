// Package transport moves generated message text off the system. Every
// transport treats the payload as opaque bytes; none of them know or care
// whether it is MT text or pain.001 XML.
package transport

import (
	"context"
	"fmt"
)

// Transport delivers one payload. Implementations must be safe for
// concurrent use.
type Transport interface {
	Name() string
	Send(ctx context.Context, filename string, payload []byte) error
}

// Registry holds the transports enabled at startup. Availability is decided
// once from configuration, not probed at call time.
type Registry struct {
	transports map[string]Transport
}

func NewRegistry(transports ...Transport) *Registry {
	r := &Registry{transports: make(map[string]Transport)}
	for _, t := range transports {
		r.transports[t.Name()] = t
	}
	return r
}

// Get returns the named transport or an error listing what is enabled.
func (r *Registry) Get(name string) (Transport, error) {
	if t, ok := r.transports[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("transport %q is not enabled (enabled: %v)", name, r.Names())
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transports))
	for name := range r.transports {
		names = append(names, name)
	}
	return names
}
