package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("cli: prompt aborted")

// Picker asks the user to choose one of options.
type Picker interface {
	Pick(ctx context.Context, message string, options []string) (string, error)
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, message string, options []string) (string, error)

func (f PickerFunc) Pick(ctx context.Context, message string, options []string) (string, error) {
	return f(ctx, message, options)
}

type surveyPicker struct{}

func (surveyPicker) Pick(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", fmt.Errorf("cli: nothing to choose for %q", message)
	}
	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[0],
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return out, nil
}
