// Package config loads and validates the stride.toml workflow definition.
package config

// Config is the decoded stride.toml.
type Config struct {
	Jira      *Jira      `toml:"jira"`
	GitHub    *GitHub    `toml:"github"`
	Workflows []Workflow `toml:"workflows"`
}

// Jira identifies the Jira instance and project queried for issues.
type Jira struct {
	URL     string `toml:"url"`
	Project string `toml:"project"`
}

// GitHub identifies the repository whose issues are listed.
type GitHub struct {
	Owner string `toml:"owner"`
	Repo  string `toml:"repo"`
}

// Workflow is a named, ordered list of steps.
type Workflow struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"steps"`
}

// Step is the raw TOML form of one workflow step. Which fields are
// meaningful depends on Type; translation into an executable step happens
// in the workflow package.
type Step struct {
	Type      string            `toml:"type"`
	Status    string            `toml:"status,omitempty"`
	Labels    []string          `toml:"labels,omitempty"`
	Rule      string            `toml:"rule,omitempty"`
	Label     string            `toml:"label,omitempty"`
	Command   string            `toml:"command,omitempty"`
	Variables map[string]string `toml:"variables,omitempty"`
}

// Workflow returns the workflow with the given name.
func (c *Config) Workflow(name string) (Workflow, bool) {
	for _, wf := range c.Workflows {
		if wf.Name == name {
			return wf, true
		}
	}
	return Workflow{}, false
}
