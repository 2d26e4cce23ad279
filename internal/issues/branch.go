package issues

import (
	"fmt"
	"strings"

	"github.com/quayside-dev/stride/internal/state"
)

// BranchName derives a git branch name from the selected issue. The unique
// issue key or number prefixes a slug of the summary, so two issues never
// map to the same branch even with identical titles.
func BranchName(issue state.Issue) string {
	switch i := issue.(type) {
	case state.JiraIssue:
		return fmt.Sprintf("%s-%s", i.Key, slug(i.Summary))
	case state.GitHubIssue:
		return fmt.Sprintf("%d-%s", i.Number, slug(i.Title))
	default:
		return ""
	}
}

// slug lowercases the text and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slug(text string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	return b.String()
}
