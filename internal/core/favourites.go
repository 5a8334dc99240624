package core

// Favourites maps a person's full name to their usual drink, remembering
// the order in which names were first set.
type Favourites struct {
	keys   []string
	drinks map[string]string
}

// Favourite is a single name/drink pair.
type Favourite struct {
	Name  string `json:"name" yaml:"name"`
	Drink string `json:"drink" yaml:"drink"`
}

// NewFavourites returns an empty mapping.
func NewFavourites() *Favourites {
	return &Favourites{drinks: make(map[string]string)}
}

// Set records drink as name's favourite. Overwriting keeps the original position.
func (f *Favourites) Set(name, drink string) {
	if _, ok := f.drinks[name]; !ok {
		f.keys = append(f.keys, name)
	}
	f.drinks[name] = drink
}

// Get returns name's favourite drink.
func (f *Favourites) Get(name string) (string, bool) {
	if f == nil {
		return "", false
	}
	drink, ok := f.drinks[name]
	return drink, ok
}

// Has reports whether name has a favourite.
func (f *Favourites) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// Len returns the number of favourites.
func (f *Favourites) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// All returns the pairs in insertion order.
func (f *Favourites) All() []Favourite {
	if f == nil {
		return nil
	}
	out := make([]Favourite, 0, len(f.keys))
	for _, name := range f.keys {
		out = append(out, Favourite{Name: name, Drink: f.drinks[name]})
	}
	return out
}
