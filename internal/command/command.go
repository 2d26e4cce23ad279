// Package command substitutes workflow-derived values into a command string
// and runs it in the shell, or previews it in dry-run mode.
package command

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/quayside-dev/stride/internal/issues"
	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/releases"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
)

// Variable is a value that can replace an arbitrary token in a command.
type Variable int

const (
	// Version resolves to the first supported version found in the project.
	Version Variable = iota
	// IssueBranch resolves to the branch name generated for the selected
	// issue, so the workflow must already have selected one.
	IssueBranch
)

// ParseVariable maps the stride.toml variable kind to a Variable.
func ParseVariable(kind string) (Variable, bool) {
	switch kind {
	case "Version":
		return Version, true
	case "IssueBranch":
		return IssueBranch, true
	default:
		return 0, false
	}
}

// ExitError reports a templated command that exited non-zero, carrying the
// exit status for diagnostics.
type ExitError struct {
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.CommandExitFmt, e.Status)
}

// Run substitutes the declared variables into cmdline and executes it in the
// shell. In dry-run mode the substituted command is reported instead and no
// process is spawned. The workflow state is returned unchanged either way.
func Run(rt run.Type, cmdline string, variables map[string]Variable) (run.Type, error) {
	cmdline, err := replaceVariables(rt, cmdline, variables)
	if err != nil {
		return rt, err
	}
	if rt.DryRun {
		fmt.Fprintf(rt.Out, messages.CommandWouldRunFmt, cmdline)
		return rt, nil
	}

	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return rt, &ExitError{Status: exitErr.ExitCode()}
		}
		return rt, fmt.Errorf(messages.CommandStartFmt, err)
	}
	return rt, nil
}

// replaceVariables substitutes each declared token with its resolved value.
// Each replacement is a literal substring substitution; resolution order
// across tokens is unspecified.
func replaceVariables(rt run.Type, cmdline string, variables map[string]Variable) (string, error) {
	for token, variable := range variables {
		switch variable {
		case Version:
			pv, err := releases.GetVersion(rt.Dir)
			if err != nil {
				return "", err
			}
			cmdline = strings.ReplaceAll(cmdline, token, pv.Version.String())
		case IssueBranch:
			selected, ok := rt.State.Selection.(state.Selected)
			if !ok {
				return "", issues.ErrNoneSelected
			}
			cmdline = strings.ReplaceAll(cmdline, token, issues.BranchName(selected.Issue))
		}
	}
	return cmdline, nil
}
