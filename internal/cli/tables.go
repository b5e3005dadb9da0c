package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"findstrings/internal/core/table"
	"findstrings/internal/output"

	"github.com/spf13/cobra"
)

func newTablesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List built-in encodings and output formats",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			encs, fmts := table.Encodings(), output.Formats()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string][]string{"encodings": encs, "formats": fmts})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Encodings:")
			for _, e := range encs {
				fmt.Fprintf(out, "  %s\n", e)
			}
			_, err := fmt.Fprintf(out, "Formats: %s\n", strings.Join(fmts, ", "))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
