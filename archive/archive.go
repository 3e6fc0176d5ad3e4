package archive

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/rcsv/encoding"
	"github.com/arloliu/rcsv/errs"
)

// Archive is an in-memory RCS history file: the administrative header
// fields plus the ordered collection of revision deltas.
//
// Deltas are kept in insertion order, which for a parsed file is file
// order, and are additionally indexed by revision number. An Archive is
// safe for concurrent reads but must not be mutated concurrently.
type Archive struct {
	head      field
	branch    field
	access    field
	symbols   field
	locks     field
	strict    bool
	integrity string
	comment   string
	expand    string
	desc      string

	order []*Delta
	index map[string]*Delta
}

// NewArchive returns an empty archive with no fields set. A usable archive
// needs at least head, access, symbols, locks and a description before it
// can be serialized.
func NewArchive() *Archive {
	return &Archive{index: make(map[string]*Delta)}
}

// Head returns the head revision number, or "" when empty or unset. The
// head names the newest trunk revision, the one whose text is stored in
// full.
func (a *Archive) Head() string {
	return a.head.value()
}

// SetHead stores the head revision number. An empty value is kept as
// present but empty and serializes as "head ;", the form of an archive
// with no revisions.
func (a *Archive) SetHead(head string) {
	a.head.assign(head)
}

// Branch returns the default branch number, or "" when empty or unset.
func (a *Archive) Branch() string {
	return a.branch.value()
}

// SetBranch stores the default branch number. An empty value is kept as
// present but empty and serializes as "branch ;".
func (a *Archive) SetBranch(branch string) {
	a.branch.assign(branch)
}

// ClearBranch removes the branch field entirely, so it is omitted from the
// serialized form.
func (a *Archive) ClearBranch() {
	a.branch.clear()
}

// Access returns the ids on the access list.
func (a *Archive) Access() []string {
	return strings.Fields(a.access.value())
}

// SetAccess stores the access list. A nil or empty list is kept as present
// but empty, the usual state of archives that do not restrict access.
func (a *Archive) SetAccess(ids []string) {
	a.access.assign(encoding.JoinIDs(ids))
}

// RawAccess returns the access field in its stored single-space form.
func (a *Archive) RawAccess() string {
	return a.access.value()
}

// SetRawAccess decodes a whitespace-separated id list and stores it in
// canonical single-space form. Anything that is not an id token fails with
// errs.ErrSyntax.
func (a *Archive) SetRawAccess(raw string) error {
	ids, err := encoding.SplitIDs(raw)
	if err != nil {
		return err
	}
	a.access.assign(encoding.JoinIDs(ids))

	return nil
}

// Symbols returns the symbolic names as a name to revision number map.
func (a *Archive) Symbols() map[string]string {
	// The stored value is canonical, so decoding cannot fail.
	pairs, _ := encoding.ParsePairs(a.symbols.value())

	return pairs
}

// SetSymbols stores the symbolic name table. The map serializes sorted by
// name, so the same table always produces the same bytes. A nil map is
// kept as present but empty.
func (a *Archive) SetSymbols(symbols map[string]string) {
	a.symbols.assign(encoding.FormatPairs(symbols))
}

// RawSymbols returns the symbols field in its stored form.
func (a *Archive) RawSymbols() string {
	return a.symbols.value()
}

// SetRawSymbols decodes a name:num pair list and stores it in canonical
// name-sorted form. Malformed pairs fail with errs.ErrSyntax.
func (a *Archive) SetRawSymbols(raw string) error {
	pairs, err := encoding.ParsePairs(raw)
	if err != nil {
		return err
	}
	a.symbols.assign(encoding.FormatPairs(pairs))

	return nil
}

// Locks returns the held locks as a user id to revision number map.
func (a *Archive) Locks() map[string]string {
	// The stored value is canonical, so decoding cannot fail.
	pairs, _ := encoding.ParsePairs(a.locks.value())

	return pairs
}

// SetLocks stores the lock table. The map serializes sorted by user id. A
// nil map is kept as present but empty.
func (a *Archive) SetLocks(locks map[string]string) {
	a.locks.assign(encoding.FormatPairs(locks))
}

// RawLocks returns the locks field in its stored form.
func (a *Archive) RawLocks() string {
	return a.locks.value()
}

// SetRawLocks decodes an id:num pair list and stores it in canonical
// id-sorted form. Malformed pairs fail with errs.ErrSyntax.
func (a *Archive) SetRawLocks(raw string) error {
	pairs, err := encoding.ParsePairs(raw)
	if err != nil {
		return err
	}
	a.locks.assign(encoding.FormatPairs(pairs))

	return nil
}

// Strict reports whether strict locking is enabled, i.e. whether checking
// in requires holding a lock.
func (a *Archive) Strict() bool {
	return a.strict
}

// SetStrict enables or disables strict locking.
func (a *Archive) SetStrict(strict bool) {
	a.strict = strict
}

// Integrity returns the integrity field as plain text, or "" when absent.
func (a *Archive) Integrity() string {
	return unquoteStored(a.integrity)
}

// QuotedIntegrity returns the integrity field as the stored string token,
// or "" when absent.
func (a *Archive) QuotedIntegrity() string {
	return a.integrity
}

// SetIntegrity stores the integrity field, quoting it for the file format.
func (a *Archive) SetIntegrity(text string) {
	a.integrity = encoding.Quote(text)
}

// SetQuotedIntegrity stores an already quoted integrity token after
// checking it is well formed.
func (a *Archive) SetQuotedIntegrity(token string) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: integrity", err)
	}
	a.integrity = token

	return nil
}

// ClearIntegrity removes the integrity field.
func (a *Archive) ClearIntegrity() {
	a.integrity = ""
}

// Comment returns the comment leader as plain text, or "" when absent.
// The field is obsolete but still written by old RCS versions.
func (a *Archive) Comment() string {
	return unquoteStored(a.comment)
}

// QuotedComment returns the comment field as the stored string token, or
// "" when absent.
func (a *Archive) QuotedComment() string {
	return a.comment
}

// SetComment stores the comment leader, quoting it for the file format.
func (a *Archive) SetComment(text string) {
	a.comment = encoding.Quote(text)
}

// SetQuotedComment stores an already quoted comment token after checking
// it is well formed.
func (a *Archive) SetQuotedComment(token string) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: comment", err)
	}
	a.comment = token

	return nil
}

// ClearComment removes the comment field.
func (a *Archive) ClearComment() {
	a.comment = ""
}

// Expand returns the keyword expansion mode as plain text, e.g. "b" or
// "kv", or "" when absent.
func (a *Archive) Expand() string {
	return unquoteStored(a.expand)
}

// QuotedExpand returns the expand field as the stored string token, or ""
// when absent.
func (a *Archive) QuotedExpand() string {
	return a.expand
}

// SetExpand stores the keyword expansion mode, quoting it for the file
// format.
func (a *Archive) SetExpand(text string) {
	a.expand = encoding.Quote(text)
}

// SetQuotedExpand stores an already quoted expand token after checking it
// is well formed.
func (a *Archive) SetQuotedExpand(token string) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: expand", err)
	}
	a.expand = token

	return nil
}

// ClearExpand removes the expand field.
func (a *Archive) ClearExpand() {
	a.expand = ""
}

// Description returns the file description as plain text, "" when unset.
func (a *Archive) Description() string {
	return unquoteStored(a.desc)
}

// QuotedDescription returns the description as the stored string token, or
// "" when unset.
func (a *Archive) QuotedDescription() string {
	return a.desc
}

// SetDescription stores the file description, quoting it for the file
// format.
func (a *Archive) SetDescription(text string) {
	a.desc = encoding.Quote(text)
}

// SetQuotedDescription stores an already quoted description token after
// checking it is well formed.
func (a *Archive) SetQuotedDescription(token string) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: desc", err)
	}
	a.desc = token

	return nil
}

// AddDelta registers a delta under its revision number, appending it to
// the serialization order. A revision the archive already holds fails with
// errs.ErrDuplicateRevision.
func (a *Archive) AddDelta(d *Delta) error {
	if a.index == nil {
		a.index = make(map[string]*Delta)
	}
	if _, ok := a.index[d.Revision()]; ok {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateRevision, d.Revision())
	}

	a.order = append(a.order, d)
	a.index[d.Revision()] = d

	return nil
}

// Delta returns the delta stored under the given revision number.
func (a *Archive) Delta(revision string) (*Delta, bool) {
	d, ok := a.index[revision]

	return d, ok
}

// LookupDelta returns the delta stored under the given revision number,
// failing with errs.ErrUnknownRevision when there is none.
func (a *Archive) LookupDelta(revision string) (*Delta, error) {
	d, ok := a.index[revision]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownRevision, revision)
	}

	return d, nil
}

// RemoveDelta removes the delta stored under the given revision number,
// failing with errs.ErrUnknownRevision when there is none. Fields of other
// deltas that mention the revision are left for the caller to repair.
func (a *Archive) RemoveDelta(revision string) error {
	if _, ok := a.index[revision]; !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownRevision, revision)
	}

	delete(a.index, revision)
	a.order = slices.DeleteFunc(a.order, func(d *Delta) bool {
		return d.Revision() == revision
	})

	return nil
}

// Deltas returns the deltas in serialization order. The slice is a copy
// but the deltas are shared, so edits through them are visible to the
// archive.
func (a *Archive) Deltas() []*Delta {
	return slices.Clone(a.order)
}

// Len returns the number of deltas in the archive.
func (a *Archive) Len() int {
	return len(a.order)
}
