// Package prompt asks the user to pick entries from numbered menus.
//
// Prompter is the only capability the round builder depends on. LinePrompter
// implements it over any LineReader: a readline terminal session when
// attached to a TTY, or a plain reader for pipes and tests.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/brewround/internal/core"
)

var (
	// ErrInvalidSelection is returned when the answer is not a menu number.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInterrupted is returned when the user presses Ctrl-C at a prompt.
	ErrInterrupted = errors.New("interrupted")
)

// Prompter asks the user to choose from a menu.
type Prompter interface {
	// SelectFromMenu returns the zero-based index of the chosen option.
	SelectFromMenu(title string, options []string) (int, error)
	// SelectPerson returns the chosen person.
	SelectPerson(title string, people []*core.Person) (*core.Person, error)
}

// LineReader returns one line of user input per call, without the newline.
type LineReader interface {
	Readline() (string, error)
}

// LinePrompter renders numbered menus to out and reads answers from in.
type LinePrompter struct {
	in    LineReader
	out   io.Writer
	theme Theme
}

// NewLinePrompter creates a prompter.
func NewLinePrompter(in LineReader, out io.Writer, theme Theme) *LinePrompter {
	return &LinePrompter{in: in, out: out, theme: theme}
}

// SelectFromMenu prints title and options numbered from 1, then reads a
// single answer.
func (p *LinePrompter) SelectFromMenu(title string, options []string) (int, error) {
	_, _ = fmt.Fprintln(p.out, p.theme.Title.Render(title))
	for i, opt := range options {
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.theme.Index.Render(fmt.Sprintf("[%d]", i+1)), opt)
	}

	line, err := p.in.Readline()
	if err != nil {
		return 0, err
	}
	return parseSelection(line, len(options))
}

// SelectPerson offers people by full name.
func (p *LinePrompter) SelectPerson(title string, people []*core.Person) (*core.Person, error) {
	idx, err := p.SelectFromMenu(title, core.FullNames(people))
	if err != nil {
		return nil, err
	}
	return people[idx], nil
}

func parseSelection(answer string, n int) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, fmt.Errorf("%w: no answer given", ErrInvalidSelection)
	}
	choice, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, answer)
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, choice, n)
	}
	return choice - 1, nil
}
