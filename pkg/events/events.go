package events

// Callback is a unit of code subscribed to an event. Callbacks take no
// arguments, return nothing, and run synchronously on the goroutine that
// triggers the event.
type Callback func()
