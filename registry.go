package hypersink

import (
	"sync"
)

// Filter is the subscription collaborator's view of a target. The dispatch
// layer decides which events reach which targets; the delivery layer only
// subscribes a target to every known filter at construction time and
// unsubscribes it on Close.
type Filter interface {
	// Subscribe routes the filter's matching events to the target.
	Subscribe(t *Target)
	// Unsubscribe stops routing events to the target.
	Unsubscribe(t *Target)
}

// Registry is a process-scoped set of live targets together with the list of
// currently known filters. All mutation happens under one internal lock; no
// code path may enumerate or mutate the registry outside it.
//
// At any quiescent instant the registry's contents equal exactly the set of
// constructed, not-yet-closed targets bound to it.
type Registry struct {
	mu      sync.Mutex
	targets map[*Target]struct{}
	filters []Filter
}

// NewRegistry creates an empty registry. Most callers use the process-wide
// Default registry; a private registry is mainly useful in tests and in
// programs hosting several independent pipelines.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[*Target]struct{}),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Register inserts the target into the registry. Registering an already
// registered target is a no-op. Registration has no failure mode.
func (r *Registry) Register(t *Target) {
	if t == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets[t] = struct{}{}
}

// Deregister removes the target from the registry. Deregistering a target
// that is not present is a no-op.
func (r *Registry) Deregister(t *Target) {
	if t == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.targets, t)
}

// Each calls fn for every registered target while holding the registry lock.
// fn must not register or deregister targets, and must not block on another
// goroutine that does.
func (r *Registry) Each(fn func(t *Target)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for t := range r.targets {
		fn(t)
	}
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.targets)
}

// AddFilter makes the filter known to the registry. Targets constructed
// afterwards subscribe to it automatically; wiring it to targets that
// already exist is the dispatch collaborator's job.
func (r *Registry) AddFilter(f Filter) {
	if f == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.filters = append(r.filters, f)
}

// RemoveFilter forgets the filter. Targets already subscribed stay
// subscribed until they are closed.
func (r *Registry) RemoveFilter(f Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, known := range r.filters {
		if known == f {
			r.filters = append(r.filters[:i], r.filters[i+1:]...)

			break
		}
	}
}

// Filters returns a snapshot of the currently known filters. The snapshot is
// taken under the registry lock; Subscribe/Unsubscribe calls against it are
// made without any registry lock held.
func (r *Registry) Filters() []Filter {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]Filter, len(r.filters))
	copy(snapshot, r.filters)

	return snapshot
}
