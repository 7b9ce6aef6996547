package script

import (
	"fmt"
	"slices"
	"strings"
)

// EventKind identifies the callback an Event was recorded from.
type EventKind uint8

const (
	EventInterface EventKind = iota + 1
	EventSignal
)

func (k EventKind) String() string {
	switch k {
	case EventInterface:
		return "interface"
	case EventSignal:
		return "signal"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one Handler invocation. For interfaces Values holds the field
// names, for signals the values.
type Event struct {
	Kind   EventKind
	Name   string
	Values []string
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s [%s]", e.Kind, e.Name, strings.Join(e.Values, " "))
}

// Recorder is a Handler that keeps every event in arrival order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnInterface(name string, fields []string) error {
	r.Events = append(r.Events, Event{Kind: EventInterface, Name: name, Values: slices.Clone(fields)})
	return nil
}

func (r *Recorder) OnSignal(name string, values []string) error {
	r.Events = append(r.Events, Event{Kind: EventSignal, Name: name, Values: slices.Clone(values)})
	return nil
}

// Signals returns only the signal events.
func (r *Recorder) Signals() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == EventSignal {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of events of the given kind.
func (r *Recorder) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
