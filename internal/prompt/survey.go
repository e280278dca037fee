package prompt

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveySelector prompts on a terminal.
type SurveySelector struct {
	// Stdio overrides the terminal streams; zero value uses the process stdio.
	Stdio *terminal.Stdio
}

// SelectMany shows a checkbox list.
func (s SurveySelector) SelectMany(message string, choices, defaults []string) (Selection, error) {
	q := &survey.MultiSelect{
		Message: message,
		Options: choices,
		Default: defaults,
		Help:    "space toggles a choice, enter confirms",
	}

	var picked []string
	if err := survey.AskOne(q, &picked, s.opts()...); err != nil {
		return interpret(err)
	}
	return Selected{Choices: picked}, nil
}

// SelectOne shows a single-choice list.
func (s SurveySelector) SelectOne(message string, choices []string, def string) (Selection, error) {
	q := &survey.Select{
		Message: message,
		Options: choices,
	}
	if def != "" {
		q.Default = def
	}

	var picked string
	if err := survey.AskOne(q, &picked, s.opts()...); err != nil {
		return interpret(err)
	}
	return Selected{Choices: []string{picked}}, nil
}

func (s SurveySelector) opts() []survey.AskOpt {
	if s.Stdio == nil {
		return nil
	}
	return []survey.AskOpt{survey.WithStdio(s.Stdio.In, s.Stdio.Out, s.Stdio.Err)}
}

// interpret maps an interrupt to Cancelled and wraps anything else.
func interpret(err error) (Selection, error) {
	if errors.Is(err, terminal.InterruptErr) {
		return Cancelled{}, nil
	}
	return nil, fmt.Errorf("prompting: %w", err)
}
