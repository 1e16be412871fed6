// Package browse walks one directory level (or a pre-supplied path
// list), classifies entries as files, folders, or sequence candidates,
// and finalizes candidates via the sequence package's Disambiguator and
// Sequence Builder.
package browse

// DetectionOptions is a bitset controlling how Browse and BrowseFiles
// classify entries.
type DetectionOptions uint

const (
	// SequenceFromFilename enables detection from explicit file lists
	// rather than a directory scan.
	SequenceFromFilename DetectionOptions = 1 << iota
	// Negative allows negative/+-prefixed numeric tokens.
	Negative
	// SequenceNeedsAtLeastTwoFiles turns singleton sequences into plain
	// files.
	SequenceNeedsAtLeastTwoFiles
	// IgnoreDotFile skips entries whose basename starts with '.'.
	IgnoreDotFile
)

func (o DetectionOptions) has(flag DetectionOptions) bool { return o&flag != 0 }

// DisplayOptions is a bitset controlling output formatting. It affects
// only the external formatting collaborator (internal/display), never
// the core detection engine.
type DisplayOptions uint

const (
	AbsolutePath DisplayOptions = 1 << iota
	RelativePath
	Properties
	Color
)

// Has reports whether flag is set in o.
func (o DisplayOptions) Has(flag DisplayOptions) bool { return o&flag != 0 }
