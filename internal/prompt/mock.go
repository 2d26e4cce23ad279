package prompt

// MockUI is a func-field test double for UI, shared by step tests across
// packages. Unset funcs leave the destination untouched and return nil,
// which keeps the first option selected.
type MockUI struct {
	SelectFunc      func(title string, options []string, current *string) error
	SecretInputFunc func(title string, value *string) error
}

func (ui *MockUI) Select(title string, options []string, current *string) error {
	if ui.SelectFunc == nil {
		return nil
	}
	return ui.SelectFunc(title, options, current)
}

func (ui *MockUI) SecretInput(title string, value *string) error {
	if ui.SecretInputFunc == nil {
		return nil
	}
	return ui.SecretInputFunc(title, value)
}
