package prompt

import (
	"fmt"

	"github.com/quayside-dev/stride/internal/messages"
)

// Choose presents items as a single-select list and returns the chosen item.
// Display strings come from each item's Stringer; they are unique in practice
// because issue keys and numbers prefix them, so the first match wins.
func Choose[T fmt.Stringer](ui UI, title string, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf(messages.PromptNoChoiceFmt, title)
	}
	options := make([]string, len(items))
	for i, item := range items {
		options[i] = item.String()
	}
	current := options[0]
	if err := ui.Select(title, options, &current); err != nil {
		return zero, err
	}
	for i, option := range options {
		if option == current {
			return items[i], nil
		}
	}
	return zero, fmt.Errorf(messages.PromptNoChoiceFmt, title)
}
