// Package rcsv reads, edits and writes RCS history files, the comma-v
// archives kept under RCS/ directories and inside CVS repositories.
//
// An archive stores every revision of one working file: the newest trunk
// revision in full and every other revision as a line-based diff against
// its neighbour, together with the administrative fields RCS tracks
// (symbolic names, locks, access list, log messages and checkin metadata).
//
// # Core Features
//
//   - Full-fidelity parsing: every field of the file format is preserved,
//     including fields that are present but empty
//   - Byte-stable serialization: parse followed by serialize reproduces
//     canonical archives byte for byte
//   - Checkout of any stored revision, on the trunk or any branch, by
//     applying the stored diffs
//   - Diff generation through the system diff tool or a pure Go
//     implementation, and conversion of revision texts between full and
//     diff form
//   - Optional integrity sealing with a 64-bit xxHash64 digest stored in
//     the archive itself
//
// # Basic Usage
//
// Parsing, editing and writing an archive:
//
//	import "github.com/arloliu/rcsv"
//
//	ar, err := rcsv.Parse(src)
//	if err != nil {
//	    return err
//	}
//
//	// Tag the current head revision.
//	symbols := ar.Symbols()
//	symbols["RELEASE_2_0"] = ar.Head()
//	ar.SetSymbols(symbols)
//
//	out, err := ar.Serialize()
//
// Reconstructing revision texts:
//
//	for _, d := range ar.Deltas() {
//	    text, err := ar.Checkout(d.Revision())
//	    ...
//	}
//
// Building a new archive from scratch:
//
//	ar := rcsv.NewArchive()
//	ar.SetHead("1.1")
//	ar.SetAccess(nil)
//	ar.SetSymbols(nil)
//	ar.SetLocks(nil)
//	ar.SetStrict(true)
//	ar.SetDescription("initial import")
//
//	d := rcsv.NewDelta("1.1")
//	d.SetTimestamp(ts)
//	d.SetAuthor("alice")
//	d.SetState(rcsv.StateExp)
//	d.SetBranches(nil)
//	d.SetNext("")
//	d.SetLog("initial revision")
//	d.SetText(content, rcsv.TextFull)
//	ar.AddDelta(d)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the archive
// package, covering the most common use cases. For the building blocks,
// use the underlying packages directly: archive for the data model and
// codec, diff for applying and generating diff scripts, encoding for the
// field codecs, and lexer for raw tokenization.
package rcsv

import (
	"github.com/arloliu/rcsv/archive"
	"github.com/arloliu/rcsv/format"
)

// Revision text representations, re-exported for convenience.
const (
	TextFull = format.TextFull
	TextDiff = format.TextDiff
)

// Revision state values with conventional meaning, re-exported for
// convenience.
const (
	StateExp  = archive.StateExp
	StateDead = archive.StateDead
)

// Parse decodes archive text into an archive.Archive.
//
// Parameters:
//   - src: the complete archive file content, newline terminated
//
// Returns:
//   - *archive.Archive: the decoded archive.
//   - error: a syntax or structure error, classifiable with errors.Is
//     against the errs package sentinels.
//
// Example:
//
//	ar, err := rcsv.Parse(src)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ar.Head())
func Parse(src string) (*archive.Archive, error) {
	return archive.Parse(src)
}

// NewArchive creates an empty archive with no fields set.
//
// A serializable archive needs at least head, access, symbols, locks and a
// description; see archive.Archive for the full API.
func NewArchive() *archive.Archive {
	return archive.NewArchive()
}

// NewDelta creates a delta for the given revision number with every other
// field unset; see archive.Delta for the full API.
func NewDelta(revision string) *archive.Delta {
	return archive.NewDelta(revision)
}
