// Package core defines the domain types shared across brewround:
// people, drinks menus, favourites and rounds.
package core

// Person is a member of the roster.
type Person struct {
	ID        int    `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Drink     string `json:"drink" yaml:"drink"`
}

// GetID returns the person's identifier.
func (p *Person) GetID() int {
	return p.ID
}

// FullName returns "first last". It is the key used by favourites and rounds.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// FullNames returns the full name of every person, in order.
func FullNames(people []*Person) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.FullName())
	}
	return names
}

// FindByFullName returns the first person whose full name matches.
func FindByFullName(people []*Person, name string) (*Person, bool) {
	for _, p := range people {
		if p.FullName() == name {
			return p, true
		}
	}
	return nil, false
}
