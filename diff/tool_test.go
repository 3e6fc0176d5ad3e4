package diff

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rcsv/errs"
)

func requireDiffTool(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("diff"); err != nil {
		t.Skip("no diff tool in PATH")
	}
}

func TestToolDiffer_RoundTrip(t *testing.T) {
	requireDiffTool(t)

	differ, err := NewToolDiffer()
	require.NoError(t, err)

	for _, tt := range differPairs {
		t.Run(tt.name, func(t *testing.T) {
			script, err := differ.Diff(tt.old, tt.new)
			require.NoError(t, err)

			got, err := ApplyText(tt.old, script)
			require.NoError(t, err)
			require.Equal(t, tt.new, got)
		})
	}
}

func TestToolDiffer_IdenticalTextsEmptyScript(t *testing.T) {
	requireDiffTool(t)

	differ, err := NewToolDiffer()
	require.NoError(t, err)

	script, err := differ.Diff("a\nb\n", "a\nb\n")
	require.NoError(t, err)
	require.Empty(t, script)
}

func TestToolDiffer_LargeInput(t *testing.T) {
	requireDiffTool(t)

	// Inputs larger than a pipe buffer exercise the concurrent feeders; a
	// sequential writer would deadlock here.
	old := strings.Repeat("line\n", 40000)
	new := old + "tail\n"

	differ, err := NewToolDiffer()
	require.NoError(t, err)

	script, err := differ.Diff(old, new)
	require.NoError(t, err)

	got, err := ApplyText(old, script)
	require.NoError(t, err)
	require.Equal(t, new, got)
}

func TestNewToolDiffer_Options(t *testing.T) {
	differ, err := NewToolDiffer(WithCommand("gdiff"), WithArgs("--rcs"))
	require.NoError(t, err)
	require.Equal(t, "gdiff", differ.command)
	require.Equal(t, []string{"--rcs"}, differ.args)

	_, err = NewToolDiffer(WithCommand(""))
	require.ErrorIs(t, err, errs.ErrDiffTool)
}

func TestToolDiffer_MissingTool(t *testing.T) {
	differ, err := NewToolDiffer(WithCommand("/nonexistent/rcsv-diff-tool"))
	require.NoError(t, err)

	_, err = differ.Diff("a\n", "b\n")
	require.ErrorIs(t, err, errs.ErrDiffTool)
}
