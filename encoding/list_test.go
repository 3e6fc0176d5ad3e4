package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rcsv/errs"
)

func TestSplitNums(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{"two branches", "1.2.1.1 1.2.2.1", []string{"1.2.1.1", "1.2.2.1"}, false},
		{"single", "1.1", []string{"1.1"}, false},
		{"empty list", "", nil, false},
		{"whitespace only", " \t\n", nil, false},
		{"archive layout whitespace", "\n\t1.2.1.1\n\t1.2.2.1", []string{"1.2.1.1", "1.2.2.1"}, false},
		{"non-num member", "1.1 start", nil, true},
		{"stray punctuation", "1.1, 1.2", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitNums(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrSyntax)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJoinNums(t *testing.T) {
	require.Equal(t, "1.2.1.1 1.2.2.1", JoinNums([]string{"1.2.1.1", "1.2.2.1"}))
	require.Equal(t, "", JoinNums(nil))
}

func TestSplitIDs(t *testing.T) {
	ids, err := SplitIDs("jrandom alice")
	require.NoError(t, err)
	require.Equal(t, []string{"jrandom", "alice"}, ids)

	ids, err = SplitIDs("")
	require.NoError(t, err)
	require.Empty(t, ids)

	// An id may embed periods, so a revision number is a valid member.
	ids, err = SplitIDs("build.bot")
	require.NoError(t, err)
	require.Equal(t, []string{"build.bot"}, ids)

	_, err = SplitIDs("jrandom; alice")
	require.ErrorIs(t, err, errs.ErrSyntax)
}

func TestJoinIDs(t *testing.T) {
	require.Equal(t, "jrandom alice", JoinIDs([]string{"jrandom", "alice"}))
	require.Equal(t, "", JoinIDs(nil))
}

func TestParsePairs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]string
		wantErr bool
	}{
		{
			"symbols table",
			"release-1:1.2 start:1.1.1.1",
			map[string]string{"release-1": "1.2", "start": "1.1.1.1"},
			false,
		},
		{
			"archive layout whitespace",
			"\n\trelease-1:1.2\n\tstart:1.1.1.1",
			map[string]string{"release-1": "1.2", "start": "1.1.1.1"},
			false,
		},
		{"empty table", "", map[string]string{}, false},
		{"later duplicate wins", "tag:1.1 tag:1.2", map[string]string{"tag": "1.2"}, false},
		{"missing colon", "release 1.2", nil, true},
		{"missing num", "release:", nil, true},
		{"non-num value", "release:tip", nil, true},
		{"stray punctuation", "release:1.2;", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrSyntax)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPairs(t *testing.T) {
	// Name-sorted output keeps serialization deterministic.
	got := FormatPairs(map[string]string{"start": "1.1", "release-1": "1.2"})
	require.Equal(t, "release-1:1.2 start:1.1", got)

	require.Equal(t, "", FormatPairs(nil))
	require.Equal(t, "", FormatPairs(map[string]string{}))
}
