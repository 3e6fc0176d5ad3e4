// Package errs defines the sentinel errors shared across the rcsv packages.
//
// Every failure surfaced by the library wraps one of these sentinels with
// fmt.Errorf("%w: detail", ...), so callers can classify failures with
// errors.Is while the message carries the specifics (field names, byte
// offsets, revision numbers).
package errs

import "errors"

// Lexical and grammatical failures.
var (
	// ErrSyntax indicates the input text does not match the archive grammar.
	// The wrapped message names the expected token and the byte offset.
	ErrSyntax = errors.New("syntax error")

	// ErrMalformedQuote indicates an at-quoted region is not well formed:
	// missing delimiters or an unescaped @ inside the body.
	ErrMalformedQuote = errors.New("malformed at-quoted string")
)

// Archive structure failures.
var (
	// ErrDuplicateRevision indicates a delta was registered under a revision
	// number the archive already holds.
	ErrDuplicateRevision = errors.New("duplicate revision")

	// ErrUnknownRevision indicates a revision number that names no registered
	// delta.
	ErrUnknownRevision = errors.New("unknown revision")

	// ErrMissingField indicates a required archive or delta field was never
	// set; raised by validation before serialization.
	ErrMissingField = errors.New("missing required field")

	// ErrTextKind indicates a delta text is not in the representation the
	// operation needs (already a diff, or not yet one).
	ErrTextKind = errors.New("wrong text representation")

	// ErrIntegrity indicates the stored integrity digest does not match the
	// archive contents.
	ErrIntegrity = errors.New("integrity mismatch")
)

// Field codec failures.
var (
	// ErrInvalidTimestamp indicates a timestamp component is out of range or
	// the dotted date string is malformed.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidNumber indicates a malformed revision number, or an
	// arithmetic delta with more components than its base.
	ErrInvalidNumber = errors.New("invalid revision number")
)

// Diff engine failures.
var (
	// ErrMalformedDiff indicates a diff script record header that is neither
	// an add nor a delete command.
	ErrMalformedDiff = errors.New("malformed diff")

	// ErrDiffOutOfRange indicates a diff record addresses a position outside
	// the current buffer.
	ErrDiffOutOfRange = errors.New("diff position out of range")

	// ErrDiffTool indicates the external diff program could not be run or
	// exited reporting trouble rather than differences.
	ErrDiffTool = errors.New("diff tool failed")
)
