package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

// suggestionMaxDistance is the largest edit distance at which a registered
// table name is still offered as a suggestion for an unrecognized name.
const suggestionMaxDistance = 5

// Registry is an immutable lookup of table schemas keyed by table name. It is
// populated once at startup and shared read-only by the validator and the
// batch orchestrator.
type Registry struct {
	schemas map[string]*Schema

	mu sync.RWMutex
}

// NewRegistry creates a registry from the given schemas. Every schema is
// validated; duplicate table names are rejected.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a schema to this registry.
func (r *Registry) Register(s *Schema) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[s.Name]; exists {
		return fmt.Errorf("schema %q already registered", s.Name)
	}
	r.schemas[s.Name] = s
	return nil
}

// Get retrieves a schema by table name.
func (r *Registry) Get(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns all registered table names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Suggest returns the registered table name closest to the given name, if any
// is within a small edit distance. Used to hint at likely typos when a file
// does not resolve to a schema.
func (r *Registry) Suggest(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := ""
	bestDist := suggestionMaxDistance + 1
	for candidate := range r.schemas {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist || (d == bestDist && candidate < best) {
			best = candidate
			bestDist = d
		}
	}
	if bestDist > suggestionMaxDistance {
		return "", false
	}
	return best, true
}
