// Package repository loads and saves the people, drinks and favourites
// files as one unit.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/store"
)

// Column positions in the people file.
const (
	personIDIndex = iota
	personFirstNameIndex
	personLastNameIndex
	personDrinkIndex
	personColumns
)

// favouriteSeparator splits a favourites line. Only the first one counts,
// so drink names may contain it and person names may not.
const favouriteSeparator = ":"

var (
	// ErrInvalidID is returned when a people row has a non-integer id.
	ErrInvalidID = errors.New("invalid person id")
	// ErrUnknownPerson is returned when a name is not on the roster.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrUnknownDrink is returned when a drink is not on the menu.
	ErrUnknownDrink = errors.New("unknown drink")
	// ErrDuplicatePerson is returned when adding a full name that already exists.
	ErrDuplicatePerson = errors.New("person already exists")
	// ErrInvalidName is returned for a name or drink the data files cannot
	// store and read back unchanged.
	ErrInvalidName = errors.New("invalid name")
)

// Paths locates the three data files.
type Paths struct {
	People     string
	Drinks     string
	Favourites string
}

// Data is everything loaded from the data files.
type Data struct {
	People     []*core.Person
	Drinks     []string
	Favourites *core.Favourites

	// Diagnostics lists favourites lines that were skipped during load.
	Diagnostics []string
}

// NewData returns empty collections.
func NewData() *Data {
	return &Data{Favourites: core.NewFavourites()}
}

// Repository reads and writes Data.
type Repository struct {
	people     *store.FileStore
	drinks     *store.FileStore
	favourites *store.FileStore
	logger     *slog.Logger
}

// New creates a repository over paths. A nil logger discards output.
func New(paths Paths, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		people:     store.NewFileStore(paths.People),
		drinks:     store.NewFileStore(paths.Drinks),
		favourites: store.NewFileStore(paths.Favourites),
		logger:     logger,
	}
}

// Load reads people, then drinks, then favourites. Favourites naming an
// unknown person or drink are skipped with a diagnostic; a bad person id
// aborts the load.
func (r *Repository) Load(ctx context.Context) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := NewData()

	rows, err := r.people.ReadCSV()
	if err != nil {
		return nil, fmt.Errorf("failed to load people: %w", err)
	}
	for i, row := range rows {
		p, err := parsePerson(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", r.people.Path(), i+1, err)
		}
		data.People = append(data.People, p)
	}

	drinks, err := r.drinks.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("failed to load drinks: %w", err)
	}
	data.Drinks = append(data.Drinks, drinks...)

	lines, err := r.favourites.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("failed to load favourites: %w", err)
	}
	names := core.FullNames(data.People)
	for _, line := range lines {
		name, drink, ok := strings.Cut(line, favouriteSeparator)
		if !ok {
			data.warn(r.logger, fmt.Sprintf("%s is not a name:drink pair", line))
			continue
		}

		valid := true
		if !slices.Contains(names, name) {
			valid = false
			data.warn(r.logger, fmt.Sprintf("%s is not a known person", name))
		}
		if !slices.Contains(data.Drinks, drink) {
			valid = false
			data.warn(r.logger, fmt.Sprintf("%s is not a known drink", drink))
		}
		if !valid {
			continue
		}

		data.Favourites.Set(name, drink)
	}

	r.logger.Debug("loaded data",
		slog.Int("people", len(data.People)),
		slog.Int("drinks", len(data.Drinks)),
		slog.Int("favourites", data.Favourites.Len()),
		slog.Int("skipped", len(data.Diagnostics)))

	return data, nil
}

// Save overwrites all three files. Each file is written on its own: a
// failure on one does not stop the others, and every failure is returned.
func (r *Repository) Save(ctx context.Context, data *Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(data.People))
	for _, p := range data.People {
		rows = append(rows, []string{strconv.Itoa(p.ID), p.FirstName, p.LastName, p.Drink})
	}

	favs := data.Favourites.All()
	lines := make([]string, 0, len(favs))
	for _, f := range favs {
		lines = append(lines, f.Name+favouriteSeparator+f.Drink)
	}

	var errs []error
	if err := r.people.SaveCSV(rows); err != nil {
		errs = append(errs, fmt.Errorf("failed to save people: %w", err))
	}
	if err := r.drinks.SaveLines(data.Drinks); err != nil {
		errs = append(errs, fmt.Errorf("failed to save drinks: %w", err))
	}
	if err := r.favourites.SaveLines(lines); err != nil {
		errs = append(errs, fmt.Errorf("failed to save favourites: %w", err))
	}

	r.logger.Debug("saved data",
		slog.Int("people", len(data.People)),
		slog.Int("drinks", len(data.Drinks)),
		slog.Int("favourites", len(favs)),
		slog.Int("failures", len(errs)))

	return errors.Join(errs...)
}

func parsePerson(row []string) (*core.Person, error) {
	if len(row) != personColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", personColumns, len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[personIDIndex]))
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidID, row[personIDIndex])
	}
	return &core.Person{
		ID:        id,
		FirstName: row[personFirstNameIndex],
		LastName:  row[personLastNameIndex],
		Drink:     row[personDrinkIndex],
	}, nil
}

func (d *Data) warn(logger *slog.Logger, msg string) {
	logger.Warn("skipping favourite", slog.String("reason", msg))
	d.Diagnostics = append(d.Diagnostics, msg)
}
