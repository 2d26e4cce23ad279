// Package state holds the single workflow state value threaded through
// release steps. Progress is modeled as closed variant sets rather than
// optional fields, so a step that needs a selected issue cannot be handed a
// state without one by accident.
package state

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/quayside-dev/stride/internal/config"
)

// State is threaded through every workflow step. Steps consume the current
// value and return the next one; a failed step leaves the old value intact.
type State struct {
	Jira      *config.Jira
	GitHub    *config.GitHub
	Creds     config.Credentials
	GitHubSes Session
	Selection Selection
	Release   Release
}

// New returns the starting state for a workflow run.
func New(jira *config.Jira, github *config.GitHub, creds config.Credentials) State {
	return State{
		Jira:      jira,
		GitHub:    github,
		Creds:     creds,
		GitHubSes: SessionNew{},
		Selection: Unselected{},
		Release:   Pending{},
	}
}

// Selection tracks issue-selection progress: Unselected or Selected.
type Selection interface {
	isSelection()
}

// Unselected is the selection state before any SelectIssue step has run.
type Unselected struct{}

// Selected carries the issue chosen by a SelectIssue step.
type Selected struct {
	Issue Issue
}

func (Unselected) isSelection() {}
func (Selected) isSelection()   {}

// Issue is the chosen issue record: a Jira or a GitHub variant.
type Issue interface {
	fmt.Stringer
	isIssue()
}

// JiraIssue is an issue fetched from Jira.
type JiraIssue struct {
	Key     string
	Summary string
}

// GitHubIssue is an issue fetched from GitHub.
type GitHubIssue struct {
	Number int
	Title  string
}

func (JiraIssue) isIssue()   {}
func (GitHubIssue) isIssue() {}

func (i JiraIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Summary)
}

func (i GitHubIssue) String() string {
	return fmt.Sprintf("%d: %s", i.Number, i.Title)
}

// Release tracks whether the version-bump step has run. It only moves
// forward within a run: Pending to Bumped, never back.
type Release interface {
	isRelease()
}

// Pending means no version bump has happened yet.
type Pending struct{}

// Bumped records the version produced by the bump step.
type Bumped struct {
	Version *semver.Version
}

func (Pending) isRelease() {}
func (Bumped) isRelease()  {}

// Session tracks GitHub API session data resolved during a run, so a token
// prompted for once is reused by later steps.
type Session interface {
	isSession()
}

// SessionNew means no GitHub call has been made yet.
type SessionNew struct{}

// SessionReady carries the token resolved by the first GitHub call.
type SessionReady struct {
	Token string
}

func (SessionNew) isSession()   {}
func (SessionReady) isSession() {}
