// Package format defines the small shared types used across the rcsv
// packages: the delta text representation tag and the archive timestamp.
package format

// TextKind tags how a delta body text is represented inside an archive.
type TextKind uint8

const (
	TextFull TextKind = 0x1 // TextFull marks a complete revision text.
	TextDiff TextKind = 0x2 // TextDiff marks a diff script against a neighbouring revision.
)

func (k TextKind) String() string {
	switch k {
	case TextFull:
		return "full"
	case TextDiff:
		return "diff"
	default:
		return "Unknown"
	}
}

// Timestamp is the six-field commit time stored in a delta's date phrase.
//
// Components follow the archive calendar conventions: Year is the full year
// (1900 or later), Month 1-12, Day 1-31, Hour 0-23, Minute 0-59, Second 0-60
// (60 admits a leap second). Timestamps carry no zone; the format stores UTC
// by convention.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}
