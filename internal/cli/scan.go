package cli

import (
	"fmt"

	"findstrings/internal/output"
	"findstrings/internal/platform/config"
	perr "findstrings/internal/platform/errors"
	pstrings "findstrings/internal/platform/strings"
	"findstrings/internal/services/scan/domain"
	scanmod "findstrings/internal/services/scan/module"
	"findstrings/internal/services/scan/service"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// scanFlags carries the scan flag values; defaults come from FINDSTRINGS_*
type scanFlags struct {
	opts      domain.Options
	tableFile string
	encoding  string

	// env defaults could not be read; reported when a scan runs
	envErr error
}

func newScanFlags() *scanFlags {
	d, err := envDefaults()
	return &scanFlags{
		opts:      d.Scan,
		tableFile: d.TableFile,
		encoding:  d.Encoding,
		envErr:    err,
	}
}

// envDefaults reads scan defaults, turning an invalid enum panic into an error
func envDefaults() (o scanmod.Options, err error) {
	defer func() {
		if r := recover(); r != nil {
			o = scanmod.Options{Scan: domain.DefaultOptions()}
			err = perr.InvalidConfigf("invalid FINDSTRINGS_ environment: %v", r)
		}
	}()
	return scanmod.FromConfig(config.New().Prefix("FINDSTRINGS_")), nil
}

func (f *scanFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.opts.MinLength, "minimum-length", "l", f.opts.MinLength, "minimum run length in bytes")
	fs.IntVarP(&f.opts.MaxRepeat, "maximum-repeat", "r", f.opts.MaxRepeat, "split a run when one byte repeats more than this")
	fs.IntVarP(&f.opts.MinDistinct, "minimum-distinct", "d", f.opts.MinDistinct, "minimum number of distinct bytes in a run")
	fs.StringVarP(&f.tableFile, "table-file", "t", f.tableFile, "translation table file")
	fs.StringVarP(&f.encoding, "encoding", "e", f.encoding, "built-in single-byte encoding, see findstrings tables")
	fs.StringVarP(&f.opts.Format, "format", "f", f.opts.Format, fmt.Sprintf("output format %v", output.Formats()))
	fs.BoolVarP(&f.opts.Unique, "unique", "u", f.opts.Unique, "print each distinct string once")
	fs.IntVar(&f.opts.ChunkSize, "chunk-size", f.opts.ChunkSize, "read size in bytes, 0 for the default")
	_ = fs.MarkHidden("chunk-size")
	fs.SetNormalizeFunc(normalizeScanFlags)

	cmd.MarkFlagsMutuallyExclusive("table-file", "encoding")
	_ = cmd.MarkFlagFilename("table-file")
}

// normalizeScanFlags accepts the short spellings min-length, max-repeat and min-distinct
func normalizeScanFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "min-length":
		name = "minimum-length"
	case "max-repeat":
		name = "maximum-repeat"
	case "min-distinct":
		name = "minimum-distinct"
	}
	return pflag.NormalizedName(name)
}

func newScanCmd() *cobra.Command {
	sf := newScanFlags()
	cmd := &cobra.Command{
		Use:   "scan [flags] <input-file>",
		Short: "Scan a file and print the strings found",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, sf, args[0])
		},
	}
	sf.bind(cmd)
	return cmd
}

func runScan(cmd *cobra.Command, sf *scanFlags, path string) error {
	if sf.envErr != nil {
		return sf.envErr
	}

	sf.opts.Format = pstrings.Lower(sf.opts.Format)

	// a table chosen on the command line replaces the other env default
	fs := cmd.Flags()
	switch {
	case fs.Changed("encoding") && !fs.Changed("table-file"):
		sf.tableFile = ""
	case fs.Changed("table-file") && !fs.Changed("encoding"):
		sf.encoding = ""
	}

	tbl, err := service.ResolveTable(sf.tableFile, sf.encoding)
	if err != nil {
		return err
	}

	w, err := output.New(sf.opts.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, err = service.New().ScanFile(cmd.Context(), path, tbl, sf.opts, w)
	if output.IsBrokenPipe(err) {
		return nil
	}
	return err
}
