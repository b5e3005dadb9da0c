package domain

import (
	"context"

	"findstrings/internal/core/chunk"
	"findstrings/internal/core/table"
	"findstrings/internal/output"
)

// ScannerPort finds strings in a source and writes them as hits
type ScannerPort interface {
	// Scan reads src from the start; the caller owns src
	Scan(ctx context.Context, src chunk.Source, tbl *table.Table, opts Options, w output.Writer) (Stats, error)

	// ScanFile opens path, scans it and closes it on every exit path
	ScanFile(ctx context.Context, path string, tbl *table.Table, opts Options, w output.Writer) (Stats, error)
}
