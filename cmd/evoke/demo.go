package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calehb/evoke/pkg/events"
	"github.com/calehb/evoke/pkg/style"
)

// demoEvent is the demo's closed event set. Subscribing or triggering
// anything outside these three constants does not compile.
type demoEvent int

const (
	demoFoo demoEvent = iota
	demoBar
	demoBaz
)

func (e demoEvent) String() string {
	switch e {
	case demoFoo:
		return "foo"
	case demoBar:
		return "bar"
	case demoBaz:
		return "baz"
	default:
		return "invalid"
	}
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the canonical three-event demo",
	Long: `Builds a static registry over the events foo, bar and baz, registers a few
callbacks and triggers them. The first two triggers go through the
compile-time-checked path; the last addresses the same registry by a
runtime string.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := events.NewStatic(demoFoo, demoBar, demoBaz)
		if err != nil {
			return err
		}

		reg.On(demoFoo, func() { pterm.Info.Printfln("%s triggered!", style.Event("foo")) })
		reg.On(demoFoo, func() { pterm.Info.Printfln("%s again!", style.Event("foo")) })
		reg.On(demoBar, func() { pterm.Info.Printfln("%s triggered!", style.Event("bar")) })
		reg.On(demoBaz, func() { pterm.Info.Printfln("%s triggered!", style.Event("baz")) })
		// reg.On(demoUnknown, func() {}) // compile error!

		reg.Trigger(demoFoo) // no lookup
		reg.Trigger(demoBar)

		// "baz" arrives as a runtime string and resolves through the
		// name bridge to the same callback lists.
		return reg.TriggerName("baz")
	},
}
