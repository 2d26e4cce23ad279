package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quayside-dev/stride/internal/config"
	"github.com/quayside-dev/stride/internal/issues"
	"github.com/quayside-dev/stride/internal/releases"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
	"github.com/quayside-dev/stride/internal/testutil"
)

func newRun(t *testing.T, dryRun bool) (run.Type, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return run.Type{
		State:  state.New(nil, nil, config.Credentials{}),
		DryRun: dryRun,
		Out:    out,
		Dir:    t.TempDir(),
	}, out
}

func selectIssue(rt run.Type, issue state.Issue) run.Type {
	rt.State.Selection = state.Selected{Issue: issue}
	return rt
}

func TestReplaceMultipleVariables(t *testing.T) {
	rt, _ := newRun(t, false)
	testutil.WriteCargoToml(t, rt.Dir, "1.2.3")
	rt = selectIssue(rt, state.JiraIssue{Key: "13", Summary: "1234"})

	got, err := replaceVariables(rt, "blah $$ branch_name", map[string]Variable{
		"$$":          Version,
		"branch_name": IssueBranch,
	})
	require.NoError(t, err)
	require.Equal(t, "blah 1.2.3 13-1234", got)
}

func TestReplaceVersionVariable(t *testing.T) {
	rt, _ := newRun(t, false)
	testutil.WriteCargoToml(t, rt.Dir, "0.9.0")

	got, err := replaceVariables(rt, "blah $$ other blah", map[string]Variable{"$$": Version})
	require.NoError(t, err)
	require.Equal(t, "blah 0.9.0 other blah", got)
}

func TestReplaceIssueBranchVariable(t *testing.T) {
	rt, _ := newRun(t, false)
	rt = selectIssue(rt, state.JiraIssue{Key: "13", Summary: "1234"})

	got, err := replaceVariables(rt, "git switch -c branch", map[string]Variable{"branch": IssueBranch})
	require.NoError(t, err)
	require.Equal(t, "git switch -c 13-1234", got)
}

func TestReplaceIssueBranchNoIssueSelected(t *testing.T) {
	rt, _ := newRun(t, false)

	_, err := replaceVariables(rt, "git switch -c branch", map[string]Variable{"branch": IssueBranch})
	require.ErrorIs(t, err, issues.ErrNoneSelected)
}

func TestReplaceVersionNoManifest(t *testing.T) {
	rt, _ := newRun(t, false)

	_, err := replaceVariables(rt, "echo $$", map[string]Variable{"$$": Version})
	require.ErrorIs(t, err, releases.ErrNoManifest)
}

func TestRunCommand(t *testing.T) {
	rt, _ := newRun(t, false)
	file := filepath.Join(rt.Dir, "present")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Run(rt, "cat "+file, nil)
	require.NoError(t, err)

	require.NoError(t, os.Remove(file))
	_, err = Run(rt, "cat "+file, nil)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.NotZero(t, exitErr.Status)
}

func TestRunCommandExitStatus(t *testing.T) {
	rt, _ := newRun(t, false)

	_, err := Run(rt, "exit 12", nil)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 12, exitErr.Status)
}

func TestRunDryRunSpawnsNothing(t *testing.T) {
	rt, out := newRun(t, true)
	marker := filepath.Join(rt.Dir, "marker")

	next, err := Run(rt, "touch "+marker, nil)
	require.NoError(t, err)
	require.Equal(t, rt.State, next.State)
	require.Equal(t, "Would run touch "+marker+"\n", out.String())

	_, statErr := os.Stat(marker)
	require.True(t, os.IsNotExist(statErr), "dry-run must not spawn the command")
}

func TestRunDryRunReportsSubstitutedCommand(t *testing.T) {
	rt, out := newRun(t, true)
	testutil.WriteCargoToml(t, rt.Dir, "2.0.0")

	_, err := Run(rt, "echo $$", map[string]Variable{"$$": Version})
	require.NoError(t, err)
	require.Equal(t, "Would run echo 2.0.0\n", out.String())
}

func TestRunDryRunStillFailsOnMissingState(t *testing.T) {
	rt, out := newRun(t, true)

	_, err := Run(rt, "echo branch", map[string]Variable{"branch": IssueBranch})
	require.ErrorIs(t, err, issues.ErrNoneSelected)
	require.Empty(t, out.String())
}

func TestParseVariable(t *testing.T) {
	v, ok := ParseVariable("Version")
	require.True(t, ok)
	require.Equal(t, Version, v)

	v, ok = ParseVariable("IssueBranch")
	require.True(t, ok)
	require.Equal(t, IssueBranch, v)

	_, ok = ParseVariable("Branch")
	require.False(t, ok)
}
