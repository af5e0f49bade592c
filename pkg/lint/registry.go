package lint

import (
	"slices"
	"sync"
)

// Registry holds all registered lint rules.
//
// Registration order is significant: the Engine runs rules and concatenates
// their diagnostics in the order they were registered.
type Registry struct {
	mu     sync.RWMutex
	order  []Rule
	byID   map[string]Rule
	byName map[string]Rule
	byCode map[int]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
		byCode: make(map[int]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it is replaced in place and
// keeps its original position.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[rule.ID()]; ok {
		idx := slices.Index(r.order, existing)
		r.order[idx] = rule
		delete(r.byName, existing.Name())
		delete(r.byCode, existing.Code())
	} else {
		r.order = append(r.order, rule)
	}

	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
	r.byCode[rule.Code()] = rule
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// GetByID retrieves a rule by its ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// GetByName retrieves a rule by its name only.
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// GetByCode retrieves a rule by the diagnostic code it reports.
func (r *Registry) GetByCode(code int) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byCode[code]
	return rule, ok
}

// Rules returns all registered rules in registration (assembly) order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
