package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavourites_SetKeepsInsertionOrder(t *testing.T) {
	f := NewFavourites()
	f.Set("Ann Lee", "Tea")
	f.Set("Bob Smith", "Cola")
	f.Set("Ann Lee", "Coffee")

	require.Equal(t, 2, f.Len())
	assert.Equal(t, []Favourite{
		{Name: "Ann Lee", Drink: "Coffee"},
		{Name: "Bob Smith", Drink: "Cola"},
	}, f.All())

	drink, ok := f.Get("Ann Lee")
	assert.True(t, ok)
	assert.Equal(t, "Coffee", drink)
	assert.False(t, f.Has("Cat Jones"))
}

func TestFavourites_NilIsEmpty(t *testing.T) {
	var f *Favourites
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Has("Ann Lee"))
	assert.Empty(t, f.All())
}

func TestDrinkOption_Resolve(t *testing.T) {
	f := NewFavourites()
	f.Set("Ann Lee", "Tea")

	drink, ok := LiteralDrink("Coffee").Resolve(f, "Ann Lee")
	assert.True(t, ok)
	assert.Equal(t, "Coffee", drink)

	drink, ok = UseFavourite().Resolve(f, "Ann Lee")
	assert.True(t, ok)
	assert.Equal(t, "Tea", drink)

	_, ok = UseFavourite().Resolve(f, "Bob Smith")
	assert.False(t, ok)

	assert.Equal(t, []string{"Coffee", UsualLabel}, Labels([]DrinkOption{LiteralDrink("Coffee"), UseFavourite()}))
}

// A drink literally called "Usual" is still a literal, not the shortcut.
func TestDrinkOption_LiteralNamedUsual(t *testing.T) {
	opt := LiteralDrink(UsualLabel)
	assert.False(t, opt.IsFavourite())

	drink, ok := opt.Resolve(NewFavourites(), "Ann Lee")
	assert.True(t, ok)
	assert.Equal(t, UsualLabel, drink)
}
