package archive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rcsv/format"
)

// canonicalArchive is a complete history in the exact byte layout the
// serializer produces: two trunk revisions and one branch revision, with
// the branch patching the line the trunk step removed.
const canonicalArchive = `head 1.2;
access ;
symbols release:1.2 start:1.1;
locks alice:1.2;
strict ;
comment @# @;
expand @kv@;

1.2
date 2026.08.23.10.30.00;
author alice;
state Exp;
branches ;
next 1.1;
commitid a1b2c3d4;

1.1
date 99.12.31.23.59.59;
author bob;
state Exp;
branches 1.1.1.1;
next ;

1.1.1.1
date 2000.01.01.00.00.00;
author carol;
state Exp;
branches ;
next ;

desc @demo history@

1.2
log @second@
text @line one
line two
@

1.1
log @first@
text @d2 1
@

1.1.1.1
log @branch fix@
text @a1 1
line two patched
@

`

// emptyArchive is the canonical form of a history with no revisions.
const emptyArchive = `head ;
access ;
symbols ;
locks ;

desc @@

`

// buildDemoArchive constructs the same history as canonicalArchive through
// the public API.
func buildDemoArchive(t *testing.T) *Archive {
	t.Helper()

	ar := NewArchive()
	ar.SetHead("1.2")
	ar.SetAccess(nil)
	ar.SetSymbols(map[string]string{"release": "1.2", "start": "1.1"})
	ar.SetLocks(map[string]string{"alice": "1.2"})
	ar.SetStrict(true)
	ar.SetComment("# ")
	ar.SetExpand("kv")
	ar.SetDescription("demo history")

	head := NewDelta("1.2")
	head.SetDate("2026.08.23.10.30.00")
	head.SetAuthor("alice")
	head.SetState(StateExp)
	head.SetBranches(nil)
	head.SetNext("1.1")
	head.SetCommitID("a1b2c3d4")
	head.SetLog("second")
	head.SetText("line one\nline two\n", format.TextFull)
	require.NoError(t, ar.AddDelta(head))

	first := NewDelta("1.1")
	first.SetDate("99.12.31.23.59.59")
	first.SetAuthor("bob")
	first.SetState(StateExp)
	first.SetBranches([]string{"1.1.1.1"})
	first.SetNext("")
	first.SetLog("first")
	first.SetText("d2 1\n", format.TextDiff)
	require.NoError(t, ar.AddDelta(first))

	fix := NewDelta("1.1.1.1")
	fix.SetDate("2000.01.01.00.00.00")
	fix.SetAuthor("carol")
	fix.SetState(StateExp)
	fix.SetBranches(nil)
	fix.SetNext("")
	fix.SetLog("branch fix")
	fix.SetText("a1 1\nline two patched\n", format.TextDiff)
	require.NoError(t, ar.AddDelta(fix))

	return ar
}
