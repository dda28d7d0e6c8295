package events_test

import (
	"testing"

	"github.com/calehb/evoke/pkg/events"
)

// The benchmarks contrast the three trigger paths over the same three-event
// set: the statically verified path (slice index, no lookup), the static
// registry's name bridge, and the dynamic registry (map lookup on every call).

func BenchmarkStaticTrigger(b *testing.B) {
	reg, err := events.NewStatic(evFoo, evBar, evBaz)
	if err != nil {
		b.Fatal(err)
	}
	reg.On(evFoo, func() {})
	reg.On(evBar, func() {})
	reg.On(evBaz, func() {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.Trigger(evFoo)
		reg.Trigger(evBar)
		reg.Trigger(evBaz)
	}
}

func BenchmarkStaticTriggerName(b *testing.B) {
	reg, err := events.NewStatic(evFoo, evBar, evBaz)
	if err != nil {
		b.Fatal(err)
	}
	reg.On(evFoo, func() {})
	reg.On(evBar, func() {})
	reg.On(evBaz, func() {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := reg.TriggerName("foo"); err != nil {
			b.Fatal(err)
		}
		if err := reg.TriggerName("bar"); err != nil {
			b.Fatal(err)
		}
		if err := reg.TriggerName("baz"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDynamicTrigger(b *testing.B) {
	reg, err := events.NewDynamic("foo", "bar", "baz")
	if err != nil {
		b.Fatal(err)
	}
	if err := reg.On("foo", func() {}); err != nil {
		b.Fatal(err)
	}
	if err := reg.On("bar", func() {}); err != nil {
		b.Fatal(err)
	}
	if err := reg.On("baz", func() {}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := reg.Trigger("foo"); err != nil {
			b.Fatal(err)
		}
		if err := reg.Trigger("bar"); err != nil {
			b.Fatal(err)
		}
		if err := reg.Trigger("baz"); err != nil {
			b.Fatal(err)
		}
	}
}
