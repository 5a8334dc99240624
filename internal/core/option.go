package core

// UsualLabel is how the favourite shortcut is shown in a drinks menu.
const UsualLabel = "Usual"

// DrinkOption is one entry of the drinks menu offered for an order. It is
// either a literal drink or the shortcut to the person's favourite.
type DrinkOption struct {
	drink     string
	favourite bool
}

// LiteralDrink returns an option for the named drink.
func LiteralDrink(name string) DrinkOption {
	return DrinkOption{drink: name}
}

// UseFavourite returns the "usual" shortcut option.
func UseFavourite() DrinkOption {
	return DrinkOption{favourite: true}
}

// IsFavourite reports whether the option resolves to the person's favourite.
func (o DrinkOption) IsFavourite() bool {
	return o.favourite
}

// Drink returns the literal drink name. It is empty for the favourite shortcut.
func (o DrinkOption) Drink() string {
	return o.drink
}

// Label returns the menu text for the option.
func (o DrinkOption) Label() string {
	if o.favourite {
		return UsualLabel
	}
	return o.drink
}

// Resolve returns the drink to record for name.
func (o DrinkOption) Resolve(favourites *Favourites, name string) (string, bool) {
	if !o.favourite {
		return o.drink, true
	}
	return favourites.Get(name)
}

// Labels returns the menu text of every option.
func Labels(options []DrinkOption) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label()
	}
	return labels
}
