package panel

import (
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/accessrig/overlay-panel-control/internal/logging/events"
)

// Registry maps panel names to builder functions and caches built
// descriptors. Registration happens at load time, before any dispatch;
// building is lazy, at most once per name, and first-build-wins so that
// identity-sensitive control templates allocated by a builder are never
// duplicated.
type Registry struct {
	mu       sync.Mutex
	builders map[string]BuilderFunc
	built    map[string]*Descriptor
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
		built:    make(map[string]*Descriptor),
	}
}

// Register records a builder under name. The name is returned so callers can
// re-export it as a constant.
func (r *Registry) Register(name string, fn BuilderFunc) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		return "", &DuplicateNameError{Name: name}
	}
	r.builders[name] = fn
	r.order = append(r.order, name)
	return name, nil
}

// MustRegister is Register for load-time wiring, where a duplicate name is an
// unrecoverable configuration mistake.
func (r *Registry) MustRegister(name string, fn BuilderFunc) string {
	registered, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return registered
}

// Lookup returns the descriptor for name, invoking the builder on first use.
// Repeated lookups return the identical descriptor instance; the builder
// never runs twice.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if desc, ok := r.built[name]; ok {
		return desc, nil
	}
	fn, ok := r.builders[name]
	if !ok {
		return nil, &UnknownPanelError{Name: name, Suggestion: r.closest(name)}
	}
	desc := &Descriptor{Name: name}
	fn(&Builder{desc: desc})
	r.built[name] = desc
	events.Panel.Built(name)
	return desc, nil
}

// Names returns every registered panel name in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

const suggestionMaxDistance = 3

func (r *Registry) closest(name string) string {
	best := ""
	bestDist := -1
	for _, candidate := range r.order {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > suggestionMaxDistance {
		return ""
	}
	return best
}
