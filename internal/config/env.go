package config

import (
	"os"

	"github.com/quayside-dev/stride/internal/messages"
)

// Credentials holds tracker secrets. They come from the environment, never
// from stride.toml, so the file stays safe to commit.
type Credentials struct {
	JiraEmail   string
	JiraToken   string
	GitHubToken string
}

// EnvCredentials reads tracker credentials from the process environment.
func EnvCredentials() Credentials {
	return Credentials{
		JiraEmail:   os.Getenv(messages.EnvJiraEmail),
		JiraToken:   os.Getenv(messages.EnvJiraToken),
		GitHubToken: os.Getenv(messages.EnvGitHubToken),
	}
}
