package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/calehb/evoke/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a starter events file",
	Long: `Writes a starter events file with the default event set. The format is
chosen by the path's extension (.toml, .yaml or .yml); the default path is
evoke.toml. An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "evoke.toml"
		if len(args) == 1 {
			path = args[0]
		}

		if err := config.WriteSample(path); err != nil {
			return err
		}

		pterm.Success.Printfln("Wrote %s", path)
		return nil
	},
}
