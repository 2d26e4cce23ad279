package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quayside-dev/stride/internal/messages"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the CLI and exits non-zero on failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := execute(args, stdout, stderr); err != nil {
		exit(1)
	}
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// versionString formats the build version with commit and date when set.
func versionString() string {
	var details []string
	if Commit != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(details) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(details, ", "))
}
