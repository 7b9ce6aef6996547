// Package dispatch routes parsed signals to handlers registered per
// interface.
//
// Each handler is registered together with the schema it expects: the
// interface name and its ordered field names. When a script declares that
// interface the declaration is checked against the schema, so a script and
// the code consuming it cannot drift apart unnoticed:
//
//	d := dispatch.New()
//	dispatch.Handle2(d, "person", "name", "age", func(name, age string) error {
//		...
//	})
//	p := script.New(d)
//	err := p.Parse(input)
//
// A Dispatcher is a script.Handler; it is built once and is not safe for
// concurrent registration.
package dispatch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/iscript/script"
)

var (
	ErrMissingHandler    = errors.New("no handler")
	ErrSignatureMismatch = errors.New("handler signature mismatch")
	ErrDuplicateHandler  = errors.New("duplicate handler")
)

// Schema is the declaration a handler expects.
type Schema struct {
	Name   string
	Fields []string
}

// HandlerFunc receives the values of one signal, in field order.
type HandlerFunc func(values []string) error

type route struct {
	schema Schema
	fn     HandlerFunc
}

type Dispatcher struct {
	routes map[string]route
}

var _ script.Handler = (*Dispatcher)(nil)

func New() *Dispatcher {
	return &Dispatcher{routes: make(map[string]route)}
}

// Handle registers fn for signals of schema.Name.
func (d *Dispatcher) Handle(schema Schema, fn HandlerFunc) error {
	if schema.Name == "" {
		return fmt.Errorf("register handler: empty interface name")
	}
	if fn == nil {
		return fmt.Errorf("register handler %s: nil function", schema.Name)
	}
	if _, ok := d.routes[schema.Name]; ok {
		return fmt.Errorf("%w for %s", ErrDuplicateHandler, schema.Name)
	}
	schema.Fields = slices.Clone(schema.Fields)
	d.routes[schema.Name] = route{schema: schema, fn: fn}
	return nil
}

// Schemas returns the registered schemas sorted by name.
func (d *Dispatcher) Schemas() []Schema {
	out := make([]Schema, 0, len(d.routes))
	for _, r := range d.routes {
		out = append(out, Schema{Name: r.schema.Name, Fields: slices.Clone(r.schema.Fields)})
	}
	slices.SortFunc(out, func(a, b Schema) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// OnInterface checks a declaration against the registered schema.
func (d *Dispatcher) OnInterface(name string, fields []string) error {
	r, err := d.lookup(name)
	if err != nil {
		return err
	}
	if !slices.Equal(r.schema.Fields, fields) {
		return fmt.Errorf("%w for %s: got %q, handler expects %q", ErrSignatureMismatch, name, fields, r.schema.Fields)
	}
	return nil
}

// OnSignal invokes the handler registered for name.
func (d *Dispatcher) OnSignal(name string, values []string) error {
	r, err := d.lookup(name)
	if err != nil {
		return err
	}
	if len(values) != len(r.schema.Fields) {
		return fmt.Errorf("%w for %s: got %d values, handler expects %q", ErrSignatureMismatch, name, len(values), r.schema.Fields)
	}
	return r.fn(values)
}

func (d *Dispatcher) lookup(name string) (route, error) {
	r, ok := d.routes[name]
	if !ok {
		return route{}, fmt.Errorf("%w [on_%s] for interface %s", ErrMissingHandler, name, name)
	}
	return r, nil
}
