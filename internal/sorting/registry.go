package sorting

import (
	"errors"
	"fmt"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Registry maps algorithm identifiers to constructors, in display order.
type Registry struct {
	names      []string
	algorithms map[string]func() Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() Algorithm),
	}
	r.Register("bubble", func() Algorithm { return NewBubble() })
	r.Register("insertion", func() Algorithm { return NewInsertion() })
	r.Register("selection", func() Algorithm { return NewSelection() })
	r.Register("quick", func() Algorithm { return NewQuick() })
	return r
}

// Register adds or replaces an algorithm. New names are appended to the
// display order.
func (r *Registry) Register(name string, fn func() Algorithm) {
	if _, ok := r.algorithms[name]; !ok {
		r.names = append(r.names, name)
	}
	r.algorithms[name] = fn
}

func (r *Registry) Get(name string) (Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Next returns the algorithm after name in display order, wrapping around.
func (r *Registry) Next(name string) string {
	for i, n := range r.names {
		if n == name {
			return r.names[(i+1)%len(r.names)]
		}
	}
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}
