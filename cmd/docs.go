package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"
	"github.com/yeisme/jprof/pkg/style"
)

//go:embed docs/usage.md
var usageDoc string

// docsCmd renders the bundled usage guide in the terminal
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the jprof usage guide",
	Long:  `jprof docs renders the bundled usage guide as styled markdown in the terminal.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return style.RenderMarkdown(cmd.OutOrStdout(), usageDoc)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
