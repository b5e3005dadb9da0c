package service

import (
	"findstrings/internal/core/table"
	perr "findstrings/internal/platform/errors"
)

// ResolveTable picks the translation table: a table file, a named single-byte
// encoding, or printable ASCII when neither is given
func ResolveTable(file, encoding string) (*table.Table, error) {
	switch {
	case file != "" && encoding != "":
		return nil, perr.Usagef("use either a table file or an encoding, not both")
	case file != "":
		return table.Load(file)
	case encoding != "":
		return table.FromEncoding(encoding)
	default:
		return table.ASCII(), nil
	}
}
