package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/calehb/evoke/pkg/style"
	"github.com/calehb/evoke/pkg/topics"
)

//go:embed docs/*.md
var docsFS embed.FS

var docsCmd = &cobra.Command{
	Use:   "docs [TOPIC]",
	Short: "Show documentation topics",
	Long:  `Lists the available documentation topics, or renders one to the terminal.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := fs.Sub(docsFS, "docs")
		if err != nil {
			return err
		}

		var renderer topics.Renderer = &topics.PlainRenderer{}
		if style.DetectFormat(os.Stdout) == style.FormatTerminal {
			renderer = topics.NewGlamourRenderer()
		}

		manager, err := topics.NewFromFS(sub, topics.Options{Renderer: renderer})
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(style.TitleStyle.Render("Available topics"))
			for _, name := range manager.List() {
				fmt.Println("  " + style.MutedStyle.Render(name))
			}
			return nil
		}

		content, err := manager.Show(args[0])
		if err != nil {
			return err
		}
		fmt.Print(content)
		return nil
	},
}
