package events

import (
	"fmt"
	"sort"

	"github.com/calehb/evoke/pkg/errors"
)

// Dynamic is a registry whose event set is supplied at run time. Every On and
// Trigger call pays one map lookup to verify the event's membership — the
// cost Static resolves before the program runs.
//
// A Dynamic registry is not safe for concurrent use.
type Dynamic struct {
	lists map[string][]Callback
}

// NewDynamic builds a registry with one empty callback list per event name.
// The event set is fixed for the life of the registry. A repeated name is
// rejected with ErrDuplicateEvent rather than silently collapsed, and an
// empty name with ErrInvalidInput.
func NewDynamic(events ...string) (*Dynamic, error) {
	if len(events) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "event set cannot be empty")
	}

	d := &Dynamic{
		lists: make(map[string][]Callback, len(events)),
	}

	for _, name := range events {
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "event name cannot be empty")
		}
		if _, dup := d.lists[name]; dup {
			return nil, errors.Newf(errors.ErrDuplicateEvent, "event %q declared more than once", name)
		}
		d.lists[name] = nil
	}

	return d, nil
}

// On appends callback to the named event's list. Registration order is
// preserved and defines trigger order. Registering against a name outside
// the set is a caller bug reported as ErrUnknownEvent.
func (d *Dynamic) On(event string, callback Callback) error {
	if _, ok := d.lists[event]; !ok {
		return errors.Newf(errors.ErrUnknownEvent, "trying to add a callback to an unknown event: %q", event).
			WithDetail("event", event)
	}
	d.lists[event] = append(d.lists[event], callback)
	return nil
}

// Trigger invokes every callback registered for the named event, in
// registration order, on the caller's goroutine, to completion. An unknown
// name is a caller bug reported as ErrUnknownEvent; no callback runs in that
// case.
func (d *Dynamic) Trigger(event string) error {
	callbacks, ok := d.lists[event]
	if !ok {
		return errors.Newf(errors.ErrUnknownEvent, "trying to trigger an unknown event: %q", event).
			WithDetail("event", event)
	}
	for _, cb := range callbacks {
		cb()
	}
	return nil
}

// MustOn registers a callback and panics if the event is unknown
// This is useful at program setup where registration errors are programming errors
func MustOn(d *Dynamic, event string, callback Callback) {
	if err := d.On(event, callback); err != nil {
		panic(fmt.Sprintf("failed to register on %s: %v", event, err))
	}
}

// MustTrigger triggers an event and panics if the event is unknown
func MustTrigger(d *Dynamic, event string) {
	if err := d.Trigger(event); err != nil {
		panic(fmt.Sprintf("failed to trigger %s: %v", event, err))
	}
}

// Has reports whether event is in the set
func (d *Dynamic) Has(event string) bool {
	_, ok := d.lists[event]
	return ok
}

// Len returns the number of events in the set
func (d *Dynamic) Len() int {
	return len(d.lists)
}

// Events returns the event names in sorted order
func (d *Dynamic) Events() []string {
	names := make([]string, 0, len(d.lists))
	for name := range d.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
