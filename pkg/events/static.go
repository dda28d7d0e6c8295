package events

import (
	"fmt"
	"sort"

	"github.com/calehb/evoke/pkg/errors"
)

// Key is the constraint for statically verified event identifiers. A key type
// is a closed integer enumeration with a textual form, typically written with
// the stringer idiom:
//
//	type AppEvent int
//
//	const (
//		EventStarted AppEvent = iota
//		EventStopped
//	)
//
//	func (e AppEvent) String() string { ... }
//
// Because every value of the enum is declared up front, referring to an event
// outside the set is a compile failure, not a runtime condition.
type Key interface {
	~int
	fmt.Stringer
}

// Static is a registry whose event set is a closed enumerated type. On and
// Trigger accept only values of K, so an event outside the set cannot be
// written down in source; the membership check costs nothing at call time.
//
// A secondary name index built at construction lets runtime-supplied strings
// address the same backing lists through TriggerName. The index holds slot
// positions, not copies, so both paths always observe the same callbacks.
//
// A Static registry is not safe for concurrent use.
type Static[K Key] struct {
	lists  [][]Callback
	byName map[string]int
}

// NewStatic builds a registry with one empty callback list per event. The
// event set is fixed for the life of the registry; only callbacks within an
// event's list can be appended afterwards. Events must be pairwise distinct,
// both as values and in textual form, and non-negative — the usual iota enum
// satisfies both. Callers are expected to pass every value of K: a K value
// fabricated by casting an integer that was never enumerated here is a
// contract violation.
func NewStatic[K Key](events ...K) (*Static[K], error) {
	if len(events) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "event set cannot be empty")
	}

	maxKey := 0
	for _, ev := range events {
		if int(ev) < 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "event %q has negative key %d", ev.String(), int(ev))
		}
		if int(ev) > maxKey {
			maxKey = int(ev)
		}
	}

	s := &Static[K]{
		lists:  make([][]Callback, maxKey+1),
		byName: make(map[string]int, len(events)),
	}

	seen := make(map[int]struct{}, len(events))
	for _, ev := range events {
		if _, dup := seen[int(ev)]; dup {
			return nil, errors.Newf(errors.ErrDuplicateEvent, "event %q declared more than once", ev.String())
		}
		seen[int(ev)] = struct{}{}

		name := ev.String()
		if _, dup := s.byName[name]; dup {
			return nil, errors.Newf(errors.ErrDuplicateEvent, "event name %q declared more than once", name)
		}
		s.byName[name] = int(ev)
	}

	return s, nil
}

// On appends callback to the event's list. Registration order is preserved
// and defines trigger order. On cannot fail: the event's membership in the
// set is established by its type.
func (s *Static[K]) On(event K, callback Callback) {
	s.lists[int(event)] = append(s.lists[int(event)], callback)
}

// Trigger invokes every callback registered for event, in registration order,
// on the caller's goroutine, to completion. The only runtime work is the
// iteration itself; there is no lookup.
func (s *Static[K]) Trigger(event K) {
	for _, cb := range s.lists[int(event)] {
		cb()
	}
}

// TriggerName fires an event addressed by its runtime textual form, for
// callers whose event name arrives from external input. The name resolves
// through the index to the identical lists used by Trigger. An unknown name
// is a caller bug reported as ErrUnknownEvent, never a normal branch of
// application logic; no callback runs in that case.
func (s *Static[K]) TriggerName(name string) error {
	idx, ok := s.byName[name]
	if !ok {
		return errors.Newf(errors.ErrUnknownEvent, "trying to trigger an unknown event: %q", name).
			WithDetail("event", name)
	}
	for _, cb := range s.lists[idx] {
		cb()
	}
	return nil
}

// MustTriggerName is TriggerName for callers that want contract violations
// to abort
func (s *Static[K]) MustTriggerName(name string) {
	if err := s.TriggerName(name); err != nil {
		panic(fmt.Sprintf("failed to trigger %s: %v", name, err))
	}
}

// Has reports whether name is the textual form of an event in the set
func (s *Static[K]) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Len returns the number of events in the set
func (s *Static[K]) Len() int {
	return len(s.byName)
}

// Events returns the textual forms of the event set in sorted order
func (s *Static[K]) Events() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
