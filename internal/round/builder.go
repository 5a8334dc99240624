// Package round drives the interactive loop that collects a round of drinks.
package round

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/prompt"
)

var (
	// ErrNoPeople is returned when there is nobody to order for.
	ErrNoPeople = errors.New("no people to choose from")
	// ErrNoDrinks is returned when the drinks menu is empty.
	ErrNoDrinks = errors.New("no drinks to choose from")
)

const (
	personPrompt   = "Whose drink would you like to set?"
	continuePrompt = "Do you want to add another drink?"
	retryMessage   = "Please choose a number from the menu"

	answerYes = "Yes"
	answerNo  = "No"
)

var continueOptions = []string{answerYes, answerNo}

// Builder runs the round building loop.
type Builder struct {
	prompter prompt.Prompter
	screen   prompt.Screen
	out      io.Writer
	logger   *slog.Logger
	theme    prompt.Theme
}

// NewBuilder creates a builder. A nil screen disables clearing and a nil
// logger discards output.
func NewBuilder(p prompt.Prompter, screen prompt.Screen, out io.Writer, logger *slog.Logger) *Builder {
	if screen == nil {
		screen = prompt.NopScreen{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{prompter: p, screen: screen, out: out, logger: logger, theme: prompt.PlainTheme()}
}

// WithTheme styles the builder's own messages with t.
func (b *Builder) WithTheme(t prompt.Theme) *Builder {
	b.theme = t
	return b
}

// AvailableDrinks returns the menu offered to name: every drink, followed by
// the favourite shortcut when name has one.
func AvailableDrinks(favourites *core.Favourites, drinks []string, name string) []core.DrinkOption {
	options := make([]core.DrinkOption, 0, len(drinks)+1)
	for _, d := range drinks {
		options = append(options, core.LiteralDrink(d))
	}
	if favourites.Has(name) {
		options = append(options, core.UseFavourite())
	}
	return options
}

// Build asks for person and drink pairs and adds them to r until the user
// says they are done. Invalid answers are retried without limit; the loop
// only ends early if input runs out, is interrupted, or ctx is cancelled.
func (b *Builder) Build(ctx context.Context, r *core.Round, favourites *core.Favourites, people []*core.Person, drinks []string) (*core.Round, error) {
	if len(people) == 0 {
		return r, ErrNoPeople
	}
	if len(drinks) == 0 {
		return r, ErrNoDrinks
	}

	for {
		b.screen.Clear()
		r.PrintOrder(b.out)

		person, err := b.selectPerson(ctx, people)
		if err != nil {
			return r, err
		}
		name := person.FullName()

		options := AvailableDrinks(favourites, drinks, name)
		opt, err := b.selectDrink(ctx, name, options)
		if err != nil {
			return r, err
		}

		drink, ok := opt.Resolve(favourites, name)
		if !ok {
			// The favourite was removed between offering and choosing.
			return r, fmt.Errorf("no favourite drink recorded for %s", name)
		}
		r.AddToRound(name, drink)
		b.logger.Debug("added to round", slog.String("name", name), slog.String("drink", drink))

		b.screen.Clear()

		more, err := b.askContinue(ctx, r)
		if err != nil {
			return r, err
		}
		if !more {
			return r, nil
		}
	}
}

func (b *Builder) selectPerson(ctx context.Context, people []*core.Person) (*core.Person, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		person, err := b.prompter.SelectPerson(personPrompt, people)
		if b.retry(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if person != nil {
			return person, nil
		}
		b.retry(prompt.ErrInvalidSelection)
	}
}

func (b *Builder) selectDrink(ctx context.Context, name string, options []core.DrinkOption) (core.DrinkOption, error) {
	title := fmt.Sprintf("Please choose a drink for %s", name)
	labels := core.Labels(options)
	for {
		if err := ctx.Err(); err != nil {
			return core.DrinkOption{}, err
		}
		idx, err := b.prompter.SelectFromMenu(title, labels)
		if b.retry(err) {
			continue
		}
		if err != nil {
			return core.DrinkOption{}, err
		}
		return options[idx], nil
	}
}

func (b *Builder) askContinue(ctx context.Context, r *core.Round) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		r.PrintOrder(b.out)
		idx, err := b.prompter.SelectFromMenu(continuePrompt, continueOptions)
		if b.retry(err) {
			continue
		}
		if err != nil {
			return false, err
		}
		return continueOptions[idx] == answerYes, nil
	}
}

// retry reports whether err is an invalid selection, telling the user to
// try again if so.
func (b *Builder) retry(err error) bool {
	if !errors.Is(err, prompt.ErrInvalidSelection) {
		return false
	}
	b.logger.Debug("invalid selection", slog.String("error", err.Error()))
	_, _ = fmt.Fprintln(b.out, b.theme.Error.Render(retryMessage))
	return true
}
