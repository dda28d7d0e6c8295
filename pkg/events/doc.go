// Package events provides a fixed-set callback registry in two disciplines:
// Static, whose event identifiers are a closed enumerated type checked by the
// compiler, and Dynamic, whose event names are supplied at run time and
// checked on every call. Both hold one ordered callback list per event and
// fire callbacks synchronously in registration order.
package events
