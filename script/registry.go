package script

import (
	"fmt"
	"slices"
)

// Interface is a declared record shape: a name and its ordered field names.
type Interface struct {
	Name   string
	Fields []string
}

func (i Interface) String() string {
	return fmt.Sprintf("i %s %v", i.Name, i.Fields)
}

// Registry holds the interfaces declared so far by one Parser. Only the
// parser mutates it; callers get read access through Parser.Registry.
type Registry struct {
	fields map[string][]string
	order  []string
}

func newRegistry() *Registry {
	return &Registry{fields: make(map[string][]string)}
}

// Lookup returns a copy of the fields declared for name.
func (r *Registry) Lookup(name string) ([]string, bool) {
	fields, ok := r.fields[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(fields), true
}

func (r *Registry) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Names returns interface names in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

func (r *Registry) Interfaces() []Interface {
	out := make([]Interface, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Interface{Name: name, Fields: slices.Clone(r.fields[name])})
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// declare stores fields under name. It reports whether the interface is new;
// an identical redeclaration is not an error and reports false.
func (r *Registry) declare(name string, fields []string) (bool, error) {
	if current, ok := r.fields[name]; ok {
		if !slices.Equal(current, fields) {
			return false, fmt.Errorf("%w of %s: declared %q, now %q", ErrInconsistentRedeclaration, name, current, fields)
		}
		return false, nil
	}
	r.fields[name] = slices.Clone(fields)
	r.order = append(r.order, name)
	return true, nil
}

func (r *Registry) reset() {
	clear(r.fields)
	r.order = nil
}
