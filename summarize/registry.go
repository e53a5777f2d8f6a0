package summarize

import "github.com/fwojciec/pagesum"

var _ pagesum.AdapterRegistry = (*Registry)(nil)

// Registry maps providers to their adapters.
type Registry struct {
	adapters map[pagesum.Provider]pagesum.Adapter
}

// NewRegistry creates a Registry holding the given adapters.
func NewRegistry(adapters ...pagesum.Adapter) *Registry {
	r := &Registry{adapters: make(map[pagesum.Provider]pagesum.Adapter)}
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

// Get returns the adapter for provider, or nil if none is registered.
func (r *Registry) Get(provider pagesum.Provider) pagesum.Adapter {
	return r.adapters[provider]
}

// Register adds an adapter, replacing any adapter for the same provider.
func (r *Registry) Register(adapter pagesum.Adapter) {
	r.adapters[adapter.Provider()] = adapter
}

// List returns registered providers in pagesum.Providers order.
func (r *Registry) List() []pagesum.Provider {
	var providers []pagesum.Provider
	for _, p := range pagesum.Providers() {
		if _, ok := r.adapters[p]; ok {
			providers = append(providers, p)
		}
	}
	return providers
}
