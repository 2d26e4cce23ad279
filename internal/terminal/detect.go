// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether issue-selection prompts can be rendered:
// stdin must be a terminal for input and stderr for the prompt itself, which
// draws on stderr so stdout stays clean for piped workflow output.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}
