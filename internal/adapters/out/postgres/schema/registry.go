package schema

import "sync/atomic"

// Registry holds the current capabilities and is safe for concurrent use.
type Registry struct {
	current atomic.Pointer[Capabilities]
}

func NewRegistry(initial Capabilities) *Registry {
	r := &Registry{}
	r.current.Store(&initial)
	return r
}

func (r *Registry) Load() Capabilities {
	return *r.current.Load()
}

// Store replaces the capabilities and reports whether the fingerprint changed.
func (r *Registry) Store(c Capabilities) bool {
	previous := r.current.Swap(&c)
	return previous == nil || previous.Fingerprint() != c.Fingerprint()
}
