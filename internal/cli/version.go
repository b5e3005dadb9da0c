package cli

import (
	"findstrings/internal/core/version"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			bi := version.Info()
			cmd.Printf("findstrings version %s\n", bi.Version)
			cmd.Printf("Git commit: %s\n", bi.Commit)
			cmd.Printf("Build date: %s\n", bi.Date)
			cmd.Printf("Go version: %s\n", bi.GoVersion)
		},
	}
}
