// Package cli holds the findstrings command tree
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	perr "findstrings/internal/platform/errors"

	"github.com/spf13/cobra"
)

// NewRootCmd builds a fresh command tree. Given a file and no subcommand the
// root behaves like scan
func NewRootCmd() *cobra.Command {
	sf := newScanFlags()

	root := &cobra.Command{
		Use:   "findstrings [flags] <input-file>",
		Short: "Find runs of printable characters in binary files",
		Long: `Find runs of interesting bytes in a binary file and print them with their offsets.

A byte is interesting when the translation table maps it to a character. The
default table is printable ASCII; use --encoding for a built-in single-byte
character set or --table-file for a custom one.

Examples:
  # Strings of 8 or more characters
  findstrings firmware.bin

  # CP437 text, at least 12 characters, as CSV
  findstrings -e cp437 -l 12 -f csv dump.img

  # Each distinct string once, as JSON lines
  findstrings -u -f jsonl core.dump | head`,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runScan(cmd, sf, args[0])
		},
	}
	sf.bind(root)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeUsage, "bad flags")
	})

	root.AddCommand(newScanCmd())
	root.AddCommand(newTablesCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// usageArgs tags argument count errors as usage errors
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUsage, "bad arguments")
		}
		return nil
	}
}

// Execute runs the command tree; SIGINT and SIGTERM cancel the context
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
