package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calehb/evoke/pkg/events"
	"github.com/calehb/evoke/pkg/logging"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare trigger cost across the three dispatch paths",
	Long: `Times the statically verified trigger, the static registry's string
bridge, and the dynamic registry's trigger over the same three-event set
with no-op callbacks. The static path carries no lookup; the other two pay
one map lookup per call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.LogDuration(time.Now(), "bench")

		staticReg, err := events.NewStatic(demoFoo, demoBar, demoBaz)
		if err != nil {
			return err
		}
		staticReg.On(demoFoo, func() {})
		staticReg.On(demoBar, func() {})
		staticReg.On(demoBaz, func() {})

		dynamicReg, err := events.NewDynamic("foo", "bar", "baz")
		if err != nil {
			return err
		}
		for _, name := range dynamicReg.Events() {
			if err := dynamicReg.On(name, func() {}); err != nil {
				return err
			}
		}

		static := measure(func() {
			staticReg.Trigger(demoFoo)
			staticReg.Trigger(demoBar)
			staticReg.Trigger(demoBaz)
		})
		bridge := measure(func() {
			staticReg.MustTriggerName("foo")
			staticReg.MustTriggerName("bar")
			staticReg.MustTriggerName("baz")
		})
		dynamic := measure(func() {
			events.MustTrigger(dynamicReg, "foo")
			events.MustTrigger(dynamicReg, "bar")
			events.MustTrigger(dynamicReg, "baz")
		})

		return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
			{"Path", "ns/trigger"},
			{"static", static},
			{"static (string bridge)", bridge},
			{"dynamic", dynamic},
		}).Render()
	},
}

// measure runs fn benchIterations times and reports nanoseconds per single
// trigger (fn fires three)
func measure(fn func()) string {
	start := time.Now()
	for i := 0; i < benchIterations; i++ {
		fn()
	}
	elapsed := time.Since(start)
	perTrigger := float64(elapsed.Nanoseconds()) / float64(benchIterations*3)
	return fmt.Sprintf("%.1f", perTrigger)
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 1_000_000, "Iterations per path")
}
