package archive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rcsv/diff"
	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/format"
)

func TestArchive_Checkout_Canonical(t *testing.T) {
	ar, err := Parse(canonicalArchive)
	require.NoError(t, err)

	tests := []struct {
		rev  string
		want string
	}{
		{"1.2", "line one\nline two\n"},
		{"1.1", "line one\n"},
		{"1.1.1.1", "line one\nline two patched\n"},
	}
	for _, tt := range tests {
		t.Run(tt.rev, func(t *testing.T) {
			got, err := ar.Checkout(tt.rev)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// checkoutFixture builds a history with a branch and a nested branch, where
// every delta's text comes from SequenceDiffer, and returns it with the
// full text committed for each revision.
//
//	1.3 - 1.2 - 1.1                    (trunk, newest first)
//	       \
//	        1.2.1.1 - 1.2.1.2          (branch)
//	         \
//	          1.2.1.1.1.1              (nested branch)
func checkoutFixture(t *testing.T) (*Archive, map[string]string) {
	t.Helper()

	texts := map[string]string{
		"1.1":         "alpha\n",
		"1.2":         "alpha\nbeta\n",
		"1.3":         "alpha\nbeta\ngamma\n",
		"1.2.1.1":     "alpha\nbeta fixed\n",
		"1.2.1.2":     "alpha\nbeta fixed\ndelta\n",
		"1.2.1.1.1.1": "ALPHA\nbeta fixed\n",
	}
	// toward[rev] is the revision whose delta stores the diff from rev.
	toward := map[string]string{
		"1.2":         "1.3",
		"1.1":         "1.2",
		"1.2.1.1":     "1.2",
		"1.2.1.2":     "1.2.1.1",
		"1.2.1.1.1.1": "1.2.1.1",
	}

	ar := NewArchive()
	ar.SetHead("1.3")
	ar.SetAccess(nil)
	ar.SetSymbols(nil)
	ar.SetLocks(nil)
	ar.SetDescription("checkout fixture")

	differ := diff.NewSequenceDiffer()
	for _, rev := range []string{"1.3", "1.2", "1.1", "1.2.1.1", "1.2.1.2", "1.2.1.1.1.1"} {
		d := NewDelta(rev)
		d.SetDate("2024.01.01.00.00.00")
		d.SetAuthor("a")
		d.SetState(StateExp)
		d.SetBranches(nil)
		d.SetNext("")
		d.SetLog("r" + rev)
		if rev == "1.3" {
			d.SetText(texts[rev], format.TextFull)
		} else {
			script, err := differ.Diff(texts[toward[rev]], texts[rev])
			require.NoError(t, err)
			d.SetText(script, format.TextDiff)
		}
		require.NoError(t, ar.AddDelta(d))
	}

	link := func(rev, next string, branches ...string) {
		d, err := ar.LookupDelta(rev)
		require.NoError(t, err)
		d.SetNext(next)
		d.SetBranches(branches)
	}
	link("1.3", "1.2")
	link("1.2", "1.1", "1.2.1.1")
	link("1.1", "")
	link("1.2.1.1", "1.2.1.2", "1.2.1.1.1.1")
	link("1.2.1.2", "")
	link("1.2.1.1.1.1", "")

	return ar, texts
}

func TestArchive_Checkout_Branches(t *testing.T) {
	ar, texts := checkoutFixture(t)

	for rev, want := range texts {
		t.Run(rev, func(t *testing.T) {
			got, err := ar.Checkout(rev)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

// The fixture must survive a serialization round trip with every revision
// still reconstructible.
func TestArchive_Checkout_AfterRoundTrip(t *testing.T) {
	ar, texts := checkoutFixture(t)

	out, err := ar.Serialize()
	require.NoError(t, err)
	parsed, err := Parse(out)
	require.NoError(t, err)

	for rev, want := range texts {
		got, err := parsed.Checkout(rev)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestArchive_Checkout_HugeAppendCount(t *testing.T) {
	// A stored script whose append count overstates its payload must not
	// crash the walk; the lines actually present are applied.
	src := `head 1.2;
access ;
symbols ;
locks ;

1.2
date 2026.08.23.10.30.00;
author alice;
state Exp;
branches ;
next 1.1;

1.1
date 99.12.31.23.59.59;
author bob;
state Exp;
branches ;
next ;

desc @@

1.2
log @@
text @a
@

1.1
log @@
text @a1 40000000000000
X
@
`
	ar, err := Parse(src)
	require.NoError(t, err)

	got, err := ar.Checkout("1.1")
	require.NoError(t, err)
	require.Equal(t, "a\nX\n", got)
}

func TestArchive_Checkout_Errors(t *testing.T) {
	t.Run("unknown revision", func(t *testing.T) {
		ar, _ := checkoutFixture(t)
		_, err := ar.Checkout("9.9")
		require.ErrorIs(t, err, errs.ErrUnknownRevision)
	})

	t.Run("head unset", func(t *testing.T) {
		ar := NewArchive()
		d := NewDelta("1.1")
		d.SetText("a\n", format.TextFull)
		require.NoError(t, ar.AddDelta(d))

		_, err := ar.Checkout("1.1")
		require.ErrorIs(t, err, errs.ErrMissingField)
	})

	t.Run("head names no delta", func(t *testing.T) {
		ar := NewArchive()
		ar.SetHead("2.1")
		d := NewDelta("1.1")
		d.SetText("a\n", format.TextFull)
		require.NoError(t, ar.AddDelta(d))

		_, err := ar.Checkout("1.1")
		require.ErrorIs(t, err, errs.ErrUnknownRevision)
	})

	t.Run("head text is a diff", func(t *testing.T) {
		ar := NewArchive()
		ar.SetHead("1.1")
		d := NewDelta("1.1")
		d.SetText("d1 1\n", format.TextDiff)
		require.NoError(t, ar.AddDelta(d))

		_, err := ar.Checkout("1.1")
		require.ErrorIs(t, err, errs.ErrTextKind)
	})

	t.Run("trunk delta holds full text", func(t *testing.T) {
		ar, _ := checkoutFixture(t)
		d, err := ar.LookupDelta("1.2")
		require.NoError(t, err)
		d.SetText("alpha\nbeta\n", format.TextFull)

		_, err = ar.Checkout("1.1")
		require.ErrorIs(t, err, errs.ErrTextKind)
	})

	t.Run("revision not reachable", func(t *testing.T) {
		ar, _ := checkoutFixture(t)
		orphan := NewDelta("2.1")
		orphan.SetText("", format.TextDiff)
		require.NoError(t, ar.AddDelta(orphan))

		_, err := ar.Checkout("2.1")
		require.ErrorIs(t, err, errs.ErrUnknownRevision)
	})

	t.Run("cyclic next chain", func(t *testing.T) {
		ar := NewArchive()
		ar.SetHead("1.3")
		add := func(rev, next, text string, kind format.TextKind) {
			d := NewDelta(rev)
			d.SetNext(next)
			d.SetText(text, kind)
			require.NoError(t, ar.AddDelta(d))
		}
		add("1.3", "1.2", "a\n", format.TextFull)
		add("1.2", "1.1", "", format.TextDiff)
		add("1.1", "1.2", "", format.TextDiff)
		add("1.0", "", "", format.TextDiff)

		_, err := ar.Checkout("1.0")
		require.ErrorIs(t, err, errs.ErrUnknownRevision)
	})
}
