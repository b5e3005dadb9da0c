// Package domain defines the core types and interfaces for the scan service
package domain

// Default scan settings
const (
	DefaultMinLength   = 8
	DefaultMaxRepeat   = 8
	DefaultMinDistinct = 1
	DefaultFormat      = "text"
)

// Options control which runs become hits and how they are written.
// The flag tag names the field in validation messages
type Options struct {
	MinLength   int    `flag:"minimum-length"   json:"min_length"   validate:"min=1"`
	MaxRepeat   int    `flag:"maximum-repeat"   json:"max_repeat"   validate:"min=1"`
	MinDistinct int    `flag:"minimum-distinct" json:"min_distinct" validate:"min=1"`
	Format      string `flag:"format"           json:"format"       validate:"oneof=text csv jsonl"`
	ChunkSize   int    `flag:"chunk-size"       json:"chunk_size"   validate:"min=0"` // 0 = 1 MiB
	Unique      bool   `flag:"unique"           json:"unique"`
}

// DefaultOptions returns the settings used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MinLength:   DefaultMinLength,
		MaxRepeat:   DefaultMaxRepeat,
		MinDistinct: DefaultMinDistinct,
		Format:      DefaultFormat,
	}
}

// Stats summarizes one scan
type Stats struct {
	Runs       int   `json:"runs"`       // runs produced by the extractor
	Emitted    int   `json:"emitted"`    // hits written
	Filtered   int   `json:"filtered"`   // runs dropped by length or distinct-byte filters
	Duplicates int   `json:"duplicates"` // runs dropped by the unique filter
	Bytes      int64 `json:"bytes"`      // input bytes consumed
}
