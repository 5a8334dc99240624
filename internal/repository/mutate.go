package repository

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/brewround/internal/core"
)

// AddPerson appends a new person with the next free id. The drink may be
// empty.
func (d *Data) AddPerson(firstName, lastName, drink string) (*core.Person, error) {
	if err := checkText("first name", firstName); err != nil {
		return nil, err
	}
	if err := checkText("last name", lastName); err != nil {
		return nil, err
	}
	if drink != "" {
		if err := checkText("drink", drink); err != nil {
			return nil, err
		}
	}

	p := &core.Person{
		ID:        core.NextID(d.People),
		FirstName: firstName,
		LastName:  lastName,
		Drink:     drink,
	}
	if err := checkPersonName(p.FullName()); err != nil {
		return nil, err
	}
	if _, ok := core.FindByFullName(d.People, p.FullName()); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePerson, p.FullName())
	}
	d.People = append(d.People, p)
	return p, nil
}

// AddDrink appends drink to the menu. It reports false if it was already there.
func (d *Data) AddDrink(drink string) (bool, error) {
	if err := checkText("drink", drink); err != nil {
		return false, err
	}
	if slices.Contains(d.Drinks, drink) {
		return false, nil
	}
	d.Drinks = append(d.Drinks, drink)
	return true, nil
}

// SetFavourite records a favourite after checking both sides are known.
func (d *Data) SetFavourite(name, drink string) error {
	if err := checkPersonName(name); err != nil {
		return err
	}
	if _, ok := core.FindByFullName(d.People, name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPerson, name)
	}
	if err := checkText("drink", drink); err != nil {
		return err
	}
	if !slices.Contains(d.Drinks, drink) {
		return fmt.Errorf("%w: %s", ErrUnknownDrink, drink)
	}
	d.Favourites.Set(name, drink)
	return nil
}

// checkText rejects values that are blank or span lines. Blank lines are
// skipped on load and a line break would split one entry in two.
func checkText(what, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s must not be blank", ErrInvalidName, what)
	}
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("%w: %s %q spans lines", ErrInvalidName, what, s)
	}
	return nil
}

// checkPersonName rejects full names that would be split when written to
// the favourites file.
func checkPersonName(name string) error {
	if strings.Contains(name, favouriteSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, favouriteSeparator)
	}
	return nil
}
