package vars

import (
	"fmt"
	"sort"
	"sync"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/value"
	"github.com/averycrespi/mathline/pkg/types"
)

// Store holds the session's variables
type Store struct {
	values map[string]float64
	mu     sync.RWMutex
}

var _ expr.Env = (*Store)(nil)

// NewStore creates an empty variable store
func NewStore() *Store {
	return &Store{
		values: make(map[string]float64),
	}
}

// Set binds the canonical form of name to v, replacing any previous
// binding
func (s *Store) Set(name string, v float64) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[Canonical(name)] = v
	return nil
}

// Get returns the value bound to name
func (s *Store) Get(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[Canonical(name)]
	return v, ok
}

// Lookup resolves name for the evaluator
func (s *Store) Lookup(name string) (value.Value, bool) {
	v, ok := s.Get(name)
	if !ok {
		return value.Value{}, false
	}
	return value.Float(v), true
}

// Names returns the bound names in sorted order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns every binding, sorted by name
func (s *Store) Snapshot() []types.Variable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Variable, 0, len(s.values))
	for name, v := range s.values {
		out = append(out, types.Variable{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of bindings
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// Load binds every entry of preset, failing on the first invalid name
func (s *Store) Load(preset map[string]float64) error {
	names := make([]string, 0, len(preset))
	for name := range preset {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Set(name, preset[name]); err != nil {
			return fmt.Errorf("failed to load variable %q: %w", name, err)
		}
	}
	return nil
}
