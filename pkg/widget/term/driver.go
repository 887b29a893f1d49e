package term

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Question is one prompt of a session. Help carries the field's current
// validation messages, if any.
type Question struct {
	Field   string
	Message string
	Help    string
}

// Driver asks the questions of a session. Sessions only talk to the
// terminal through it, so tests can script the answers.
type Driver interface {
	// Text asks for a line of text, offering current as the default.
	Text(ctx context.Context, q Question, current string) (string, error)
	// Toggle asks a yes/no question.
	Toggle(ctx context.Context, q Question, current bool) (bool, error)
	// Keep offers items, all selected, and returns the ones left selected
	// in their original order.
	Keep(ctx context.Context, q Question, items []string) ([]string, error)
	// Print writes one line of output.
	Print(ctx context.Context, line string) error
}

// SurveyDriver prompts with survey on a pair of terminal files.
type SurveyDriver struct {
	in  terminal.FileReader
	out terminal.FileWriter
}

// NewSurveyDriver returns a driver reading in and writing out. Nil values
// fall back to stdin and stdout.
func NewSurveyDriver(in terminal.FileReader, out terminal.FileWriter) *SurveyDriver {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &SurveyDriver{in: in, out: out}
}

func (d *SurveyDriver) Text(ctx context.Context, q Question, current string) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Input{Message: q.Message, Help: q.Help, Default: current}, &answer)
	return answer, err
}

func (d *SurveyDriver) Toggle(ctx context.Context, q Question, current bool) (bool, error) {
	answer := current
	err := d.ask(ctx, &survey.Confirm{Message: q.Message, Help: q.Help, Default: current}, &answer)
	return answer, err
}

func (d *SurveyDriver) Keep(ctx context.Context, q Question, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}
	var picked []survey.OptionAnswer
	prompt := &survey.MultiSelect{Message: q.Message, Help: q.Help, Options: items, Default: items}
	if err := d.ask(ctx, prompt, &picked); err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(picked))
	for _, answer := range picked {
		kept = append(kept, items[answer.Index])
	}
	return kept, nil
}

func (d *SurveyDriver) Print(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, line)
	return err
}

// ask runs one survey prompt; Ctrl+C maps to ErrAborted.
func (d *SurveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, survey.WithStdio(d.in, d.out, os.Stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

var _ Driver = (*SurveyDriver)(nil)
