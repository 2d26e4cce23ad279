package terminal

import "testing"

func TestIsInteractive(t *testing.T) {
	// Test processes have no TTY attached, so this exercises the negative
	// path; the value itself depends on the environment and is not asserted.
	_ = IsInteractive()
}
