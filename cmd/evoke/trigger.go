package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calehb/evoke/pkg/config"
	"github.com/calehb/evoke/pkg/logging"
	"github.com/calehb/evoke/pkg/style"
)

var triggerConfigFile string

var triggerCmd = &cobra.Command{
	Use:   "trigger EVENT...",
	Short: "Fire events from a runtime-configured registry",
	Long: `Builds a dynamic registry from the events file (or the built-in default set
foo, bar, baz) and fires the named events in order. Naming an event outside
the configured set is a fatal error: the registry treats it as a caller bug,
not a condition to recover from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("trigger")

		cfg := config.Default()
		if triggerConfigFile != "" {
			var err error
			cfg, err = config.Load(triggerConfigFile)
			if err != nil {
				return err
			}
		}

		reg, err := cfg.Registry()
		if err != nil {
			return err
		}

		for _, name := range reg.Events() {
			name := name
			if err := reg.On(name, func() {
				pterm.Success.Printfln("%s triggered!", style.Event(name))
			}); err != nil {
				return err
			}
		}

		for _, name := range args {
			logger.Debug().Str("event", name).Msg("Triggering event")
			if err := reg.Trigger(name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	triggerCmd.Flags().StringVarP(&triggerConfigFile, "config", "c", "", "Events file (.toml, .yaml or .yml)")
}
