// Package archive models RCS history files: the comma-v format kept under
// RCS/ and CVS repository directories. It parses archive text into an
// Archive value, lets callers inspect and edit every stored field, and
// serializes the result back to the canonical layout.
//
// # Model
//
// An Archive holds the administrative fields from the file header (head,
// branch, access, symbols, locks, strict, integrity, comment, expand, the
// description) and an ordered collection of Delta values, one per stored
// revision. A Delta carries the revision metadata (date, author, state,
// branches, next, commitid) together with the log message and the revision
// text. The text of the head revision is stored in full; every other
// revision stores a diff against its neighbour, tagged with
// format.TextDiff.
//
// Fields that the grammar allows to be present but empty (for example
// "next ;") are tracked separately from fields that are absent, so a parsed
// file serializes back to the same bytes.
//
// # Usage
//
// Parse, edit, serialize:
//
//	ar, err := archive.Parse(src)
//	if err != nil {
//	    return err
//	}
//	ar.SetSymbols(map[string]string{"RELEASE_1": "1.4"})
//	out, err := ar.Serialize()
//
// Reconstruct the full text of any revision:
//
//	text, err := ar.Checkout("1.2.1.3")
//
// Serialize validates first and reports missing required fields with
// errs.ErrMissingField before emitting anything, so a failed call never
// produces partial output.
package archive
