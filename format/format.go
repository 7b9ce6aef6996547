// Package format renders the event stream of a parsed interface script.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/iscript/script"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(events []script.Event) error
}

// record is the serialized shape of one event. Signals also carry their
// values keyed by the field names of the preceding declaration.
type record struct {
	Kind   string            `json:"kind" yaml:"kind" toml:"kind"`
	Name   string            `json:"name" yaml:"name" toml:"name"`
	Values []string          `json:"values" yaml:"values" toml:"values"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
}

type document struct {
	Events []record `json:"events" yaml:"events" toml:"events"`
}

func buildDocument(events []script.Event) document {
	declared := make(map[string][]string)
	doc := document{Events: make([]record, 0, len(events))}
	for _, e := range events {
		r := record{Kind: e.Kind.String(), Name: e.Name, Values: e.Values}
		if r.Values == nil {
			r.Values = []string{}
		}
		switch e.Kind {
		case script.EventInterface:
			declared[e.Name] = e.Values
		case script.EventSignal:
			if fields, ok := declared[e.Name]; ok && len(fields) == len(e.Values) && len(fields) > 0 {
				r.Fields = make(map[string]string, len(fields))
				for i, f := range fields {
					r.Fields[f] = e.Values[i]
				}
			}
		}
		doc.Events = append(doc.Events, r)
	}
	return doc
}

// New returns the encoder registered under name: line, json, yaml or toml.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "toml":
		return NewTOMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected line, json, yaml, or toml)", name)
	}
}
