package prompt

// Selection is the outcome of a prompt: Cancelled or Selected.
type Selection interface {
	isSelection()
}

// Cancelled means the operator aborted the prompt.
type Cancelled struct{}

// Selected carries the chosen values in menu order.
type Selected struct {
	Choices []string
}

func (Cancelled) isSelection() {}
func (Selected) isSelection()  {}

// Selector asks the operator to choose from a list.
type Selector interface {
	// SelectMany allows any subset of choices; defaults are preselected.
	SelectMany(message string, choices, defaults []string) (Selection, error)
	// SelectOne allows exactly one choice; def is preselected when non-empty.
	SelectOne(message string, choices []string, def string) (Selection, error)
}

// Static is a Selector that returns fixed answers.
type Static struct {
	Many Selection
	One  Selection
}

// SelectMany returns s.Many, or the defaults when unset.
func (s Static) SelectMany(_ string, _, defaults []string) (Selection, error) {
	if s.Many == nil {
		return Selected{Choices: defaults}, nil
	}
	return s.Many, nil
}

// SelectOne returns s.One, or the default when unset.
func (s Static) SelectOne(_ string, _ []string, def string) (Selection, error) {
	if s.One == nil {
		if def == "" {
			return Cancelled{}, nil
		}
		return Selected{Choices: []string{def}}, nil
	}
	return s.One, nil
}
