package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/calehb/evoke/internal/version"
	"github.com/calehb/evoke/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "evoke",
		Short: "A fixed-set event dispatcher",
		Long: `evoke is a callback registry over a fixed set of named events, built in
two disciplines: a static registry whose event identifiers are checked by
the compiler, and a dynamic registry whose names are checked on every call.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(triggerCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(docsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for evoke`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evoke version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
