package archive

import (
	"fmt"
	"strings"

	"github.com/arloliu/rcsv/diff"
	"github.com/arloliu/rcsv/encoding"
	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/format"
)

// Conventional state values. RCS stamps new revisions with StateExp, and
// CVS uses StateDead on revisions that delete the file.
const (
	StateExp  = "Exp"
	StateDead = "dead"
)

// Delta is one stored revision: the metadata phrases from the delta header
// section plus the log message and revision text from the delta text
// section of the file.
//
// Construct deltas with NewDelta; the revision number is the delta's
// identity inside an archive and is fixed at construction.
type Delta struct {
	revision string
	date     string
	author   string
	state    field
	branches field
	next     field
	commitid string
	log      string
	text     string
	kind     format.TextKind
}

// NewDelta returns a delta for the given revision number with every other
// field unset.
func NewDelta(revision string) *Delta {
	return &Delta{revision: revision}
}

// Revision returns the revision number this delta is stored under.
func (d *Delta) Revision() string {
	return d.revision
}

// Date returns the raw dotted date string, e.g. "2026.08.23.10.30.00", or
// "" when unset. Pre-2000 dates carry a two-digit year.
func (d *Delta) Date() string {
	return d.date
}

// SetDate stores a raw dotted date string without validating it. Use
// SetTimestamp for a checked write.
func (d *Delta) SetDate(date string) {
	d.date = date
}

// Timestamp decodes the date field into its calendar components.
func (d *Delta) Timestamp() (format.Timestamp, error) {
	return encoding.ParseTimestamp(d.date)
}

// SetTimestamp validates the given calendar components and stores them in
// the canonical dotted form, using the two-digit year variant for dates
// before 2000.
func (d *Delta) SetTimestamp(ts format.Timestamp) error {
	date, err := encoding.FormatTimestamp(ts)
	if err != nil {
		return err
	}
	d.date = date

	return nil
}

// Author returns the id of the user who checked in this revision, or ""
// when unset.
func (d *Delta) Author() string {
	return d.author
}

// SetAuthor stores the checkin author.
func (d *Delta) SetAuthor(author string) {
	d.author = author
}

// State returns the state field, "" when empty or unset. RCS defaults new
// revisions to StateExp but any id is legal.
func (d *Delta) State() string {
	return d.state.value()
}

// SetState stores the state field. An empty value is kept as present but
// empty and serializes as "state ;".
func (d *Delta) SetState(state string) {
	d.state.assign(state)
}

// Branches returns the revision numbers of the first nodes of all branches
// rooted at this delta.
func (d *Delta) Branches() []string {
	return strings.Fields(d.branches.value())
}

// SetBranches stores the branch list. A nil or empty list is kept as
// present but empty and serializes as "branches ;".
func (d *Delta) SetBranches(branches []string) {
	d.branches.assign(encoding.JoinNums(branches))
}

// RawBranches returns the branches field in its stored single-space form.
func (d *Delta) RawBranches() string {
	return d.branches.value()
}

// SetRawBranches decodes a whitespace-separated list of revision numbers
// and stores it in canonical single-space form. Anything that is not a num
// token fails with errs.ErrSyntax.
func (d *Delta) SetRawBranches(raw string) error {
	nums, err := encoding.SplitNums(raw)
	if err != nil {
		return err
	}
	d.branches.assign(encoding.JoinNums(nums))

	return nil
}

// Next returns the next revision in the delta chain, or "" when the chain
// ends here. On the trunk next points to the previous revision; on a
// branch it points to the subsequent one.
func (d *Delta) Next() string {
	return d.next.value()
}

// SetNext stores the next pointer. An empty value marks the end of the
// chain and serializes as "next ;".
func (d *Delta) SetNext(next string) {
	d.next.assign(next)
}

// CommitID returns the commitid field, or "" when absent. CVS uses it to
// tie together the per-file revisions of one commit.
func (d *Delta) CommitID() string {
	return d.commitid
}

// SetCommitID stores the commitid field; an empty value removes it.
func (d *Delta) SetCommitID(commitid string) {
	d.commitid = commitid
}

// Log returns the log message as plain text, "" when unset.
func (d *Delta) Log() string {
	return unquoteStored(d.log)
}

// QuotedLog returns the log message as the stored string token, including
// its @ delimiters, or "" when unset.
func (d *Delta) QuotedLog() string {
	return d.log
}

// SetLog stores the log message, quoting it for the file format.
func (d *Delta) SetLog(text string) {
	d.log = encoding.Quote(text)
}

// SetQuotedLog stores an already quoted log token after checking it is
// well formed.
func (d *Delta) SetQuotedLog(token string) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: log of revision %s", err, d.revision)
	}
	d.log = token

	return nil
}

// Text returns the revision text as plain text, "" when unset. Whether the
// value is a complete revision or a diff script is reported by TextKind.
func (d *Delta) Text() string {
	return unquoteStored(d.text)
}

// QuotedText returns the revision text as the stored string token,
// including its @ delimiters, or "" when unset.
func (d *Delta) QuotedText() string {
	return d.text
}

// TextKind reports which representation the text field currently holds.
// It returns 0 while the text is unset.
func (d *Delta) TextKind() format.TextKind {
	return d.kind
}

// SetText stores the revision text, quoting it for the file format. The
// kind records whether text is a complete revision (format.TextFull) or a
// diff script against a neighbouring revision (format.TextDiff).
func (d *Delta) SetText(text string, kind format.TextKind) {
	d.text = encoding.Quote(text)
	d.kind = kind
}

// SetQuotedText stores an already quoted text token after checking it is
// well formed.
func (d *Delta) SetQuotedText(token string, kind format.TextKind) error {
	if _, err := encoding.Unquote(token); err != nil {
		return fmt.Errorf("%w: text of revision %s", err, d.revision)
	}
	d.text = token
	d.kind = kind

	return nil
}

// ConvertTextToDiff replaces this delta's full text with a diff produced by
// differ from prev's full text to it. Both deltas must currently hold full
// text; errs.ErrTextKind reports a delta that is already a diff. On any
// failure the delta is left unchanged.
func (d *Delta) ConvertTextToDiff(prev *Delta, differ diff.Differ) error {
	if d.kind != format.TextFull {
		return fmt.Errorf("%w: revision %s does not hold full text", errs.ErrTextKind, d.revision)
	}
	if prev.kind != format.TextFull {
		return fmt.Errorf("%w: revision %s does not hold full text", errs.ErrTextKind, prev.revision)
	}

	script, err := differ.Diff(prev.Text(), d.Text())
	if err != nil {
		return err
	}
	d.SetText(script, format.TextDiff)

	return nil
}

// ConvertTextFromDiff replaces this delta's diff text with the full text
// obtained by applying it to prev's full text. This delta must currently
// hold a diff and prev full text. On any failure the delta is left
// unchanged.
func (d *Delta) ConvertTextFromDiff(prev *Delta) error {
	if d.kind != format.TextDiff {
		return fmt.Errorf("%w: revision %s does not hold a diff", errs.ErrTextKind, d.revision)
	}
	if prev.kind != format.TextFull {
		return fmt.Errorf("%w: revision %s does not hold full text", errs.ErrTextKind, prev.revision)
	}

	text, err := diff.ApplyText(prev.Text(), d.Text())
	if err != nil {
		return err
	}
	d.SetText(text, format.TextFull)

	return nil
}

// validate reports the first required field this delta is missing.
func (d *Delta) validate() error {
	switch {
	case d.date == "":
		return fmt.Errorf("%w: date of revision %s", errs.ErrMissingField, d.revision)
	case d.author == "":
		return fmt.Errorf("%w: author of revision %s", errs.ErrMissingField, d.revision)
	case !d.state.isSet():
		return fmt.Errorf("%w: state of revision %s", errs.ErrMissingField, d.revision)
	case !d.branches.isSet():
		return fmt.Errorf("%w: branches of revision %s", errs.ErrMissingField, d.revision)
	case !d.next.isSet():
		return fmt.Errorf("%w: next of revision %s", errs.ErrMissingField, d.revision)
	case d.log == "":
		return fmt.Errorf("%w: log of revision %s", errs.ErrMissingField, d.revision)
	case d.text == "":
		return fmt.Errorf("%w: text of revision %s", errs.ErrMissingField, d.revision)
	}

	return nil
}

// unquoteStored unwraps a stored string token. Stored tokens are produced
// by Quote or checked on the way in, so "" is the only value that is not a
// valid token and it stands for an unset field.
func unquoteStored(token string) string {
	if token == "" {
		return ""
	}
	text, err := encoding.Unquote(token)
	if err != nil {
		return ""
	}

	return text
}
