package param

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParameter is returned when a layout declares a name twice.
	ErrDuplicateParameter = errors.New("param: duplicate parameter")

	// ErrInvalidRange is returned for an unusable range or default.
	ErrInvalidRange = errors.New("param: invalid range")

	// ErrUnknownParameter is returned when a name is not in the store.
	ErrUnknownParameter = errors.New("param: unknown parameter")
)

// Store holds the parameters of a layout. The set of parameters is fixed at
// construction, so lookups need no locking.
type Store struct {
	params map[string]*Parameter
	order  []string
}

// NewStore creates a store with every parameter at its default.
func NewStore(layout Layout) (*Store, error) {
	s := &Store{
		params: make(map[string]*Parameter, len(layout.decls)),
		order:  make([]string, 0, len(layout.decls)),
	}

	for _, d := range layout.decls {
		if _, exists := s.params[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, d.Name)
		}

		if !d.Range.Valid() {
			return nil, fmt.Errorf("%w: %q: %+v", ErrInvalidRange, d.Name, d.Range)
		}

		if d.Default < d.Range.Min || d.Default > d.Range.Max {
			return nil, fmt.Errorf("%w: %q: default %v outside [%v, %v]",
				ErrInvalidRange, d.Name, d.Default, d.Range.Min, d.Range.Max)
		}

		s.params[d.Name] = newParameter(d)
		s.order = append(s.order, d.Name)
	}

	return s, nil
}

// Parameter returns the named parameter.
func (s *Store) Parameter(name string) (*Parameter, bool) {
	p, ok := s.params[name]
	return p, ok
}

// Set stores a real-world value for the named parameter.
func (s *Store) Set(name string, v float64) error {
	p, ok := s.params[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	p.Store(v)

	return nil
}

// Get returns the current value of the named parameter.
func (s *Store) Get(name string) (float64, error) {
	p, ok := s.params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	return p.Load(), nil
}

// Names returns the parameter names in declaration order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// All returns the parameters in declaration order.
func (s *Store) All() []*Parameter {
	out := make([]*Parameter, len(s.order))
	for i, name := range s.order {
		out[i] = s.params[name]
	}

	return out
}

// ResetToDefaults restores every parameter to its default.
func (s *Store) ResetToDefaults() {
	for _, p := range s.params {
		p.Reset()
	}
}
