package archive

import (
	"fmt"
	"strings"

	"github.com/arloliu/rcsv/diff"
	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/format"
)

// Checkout reconstructs the complete text of the given revision.
//
// The walk starts at the head revision, whose text is stored in full, and
// applies one stored diff per step: down the trunk along next links, and
// out onto branches at each branch point on the target's path. Checking
// out the head itself applies no diffs.
//
// Failures wrap errs.ErrMissingField when head is unset or empty,
// errs.ErrUnknownRevision when the revision is not stored or cannot be
// reached from head, and errs.ErrTextKind when a delta on the path holds
// the wrong text representation.
func (a *Archive) Checkout(revision string) (string, error) {
	if _, err := a.LookupDelta(revision); err != nil {
		return "", err
	}

	head := a.Head()
	if head == "" {
		return "", fmt.Errorf("%w: head", errs.ErrMissingField)
	}
	cur, ok := a.Delta(head)
	if !ok {
		return "", fmt.Errorf("%w: head %s", errs.ErrUnknownRevision, head)
	}
	if cur.TextKind() != format.TextFull {
		return "", fmt.Errorf("%w: head revision %s does not hold full text", errs.ErrTextKind, head)
	}

	text := cur.Text()
	target := strings.Split(revision, ".")

	// A well-formed archive reaches any revision within Len() steps; the
	// budget turns a cyclic next chain into an error instead of a hang.
	for steps := a.Len(); cur.Revision() != revision; steps-- {
		if steps <= 0 {
			return "", fmt.Errorf("%w: revision %s is not reachable from head %s", errs.ErrUnknownRevision, revision, head)
		}

		nextRev := stepToward(cur, target)
		if nextRev == "" {
			return "", fmt.Errorf("%w: revision %s is not reachable from head %s", errs.ErrUnknownRevision, revision, head)
		}
		next, ok := a.Delta(nextRev)
		if !ok {
			return "", fmt.Errorf("%w: %s (linked from %s)", errs.ErrUnknownRevision, nextRev, cur.Revision())
		}
		if next.TextKind() != format.TextDiff {
			return "", fmt.Errorf("%w: revision %s does not hold a diff", errs.ErrTextKind, nextRev)
		}

		applied, err := diff.ApplyText(text, next.Text())
		if err != nil {
			return "", err
		}
		text = applied
		cur = next
	}

	return text, nil
}

// stepToward picks the revision to move to from cur: the first node of the
// branch that continues the target's numbering when cur sits on the
// target's dotted path, otherwise cur's next link. "" means the walk is
// stuck.
func stepToward(cur *Delta, target []string) string {
	comps := strings.Split(cur.Revision(), ".")
	if len(comps) < len(target) && isPrefix(comps, target) {
		for _, b := range cur.Branches() {
			bc := strings.Split(b, ".")
			if isPrefix(bc[:len(bc)-1], target) {
				return b
			}
		}

		return ""
	}

	return cur.Next()
}

func isPrefix(prefix, comps []string) bool {
	if len(prefix) > len(comps) {
		return false
	}
	for i, p := range prefix {
		if p != comps[i] {
			return false
		}
	}

	return true
}
