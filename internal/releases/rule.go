// Package releases owns semantic-version discovery and bumping.
package releases

// Rule describes how to increment the current version. It is a closed set:
// the three numeric bumps, Release (strip prerelease), and Pre (labeled
// prerelease increment).
type Rule interface {
	isRule()
}

// Major bumps the major component (the minor component for 0.x versions).
type Major struct{}

// Minor bumps the minor component (the patch component for 0.x versions).
type Minor struct{}

// Patch bumps the patch component.
type Patch struct{}

// Release strips the prerelease component, leaving the numbers untouched.
type Release struct{}

// Pre applies a labeled prerelease increment. When the current version has
// no prerelease yet, Fallback decides which numeric component to bump first.
type Pre struct {
	Label    string
	Fallback ConventionalRule
}

func (Major) isRule()   {}
func (Minor) isRule()   {}
func (Patch) isRule()   {}
func (Release) isRule() {}
func (Pre) isRule()     {}

// ConventionalRule is the subset of rules derivable from conventional
// commits. Its zero value is Patch, the lowest severity.
type ConventionalRule int

const (
	ConventionalPatch ConventionalRule = iota
	ConventionalMinor
	ConventionalMajor
)

// Rule widens a ConventionalRule into a Rule.
func (c ConventionalRule) Rule() Rule {
	switch c {
	case ConventionalMajor:
		return Major{}
	case ConventionalMinor:
		return Minor{}
	default:
		return Patch{}
	}
}
