package repository

import (
	"context"
	"testing"

	"github.com/leapstack-labs/brewround/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_AddPerson(t *testing.T) {
	data := NewData()

	ann, err := data.AddPerson("Ann", "Lee", "Tea")
	require.NoError(t, err)
	assert.Equal(t, 1, ann.ID)

	bob, err := data.AddPerson("Bob", "Smith", "")
	require.NoError(t, err)
	assert.Equal(t, 2, bob.ID)

	_, err = data.AddPerson("Ann", "Lee", "Coffee")
	assert.ErrorIs(t, err, ErrDuplicatePerson)
	assert.Len(t, data.People, 2)
}

func TestData_AddPersonRejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		drink     string
	}{
		{name: "separator in first name", firstName: "A:b", lastName: "Lee", drink: "Tea"},
		{name: "separator in last name", firstName: "Ann", lastName: "Lee:Tea"},
		{name: "empty first name", firstName: "", lastName: "Lee"},
		{name: "blank last name", firstName: "Ann", lastName: "   "},
		{name: "line break in name", firstName: "Ann\nBob", lastName: "Lee"},
		{name: "blank drink", firstName: "Ann", lastName: "Lee", drink: " \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := NewData()
			_, err := data.AddPerson(tt.firstName, tt.lastName, tt.drink)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.Empty(t, data.People)
		})
	}
}

func TestData_AddDrink(t *testing.T) {
	data := NewData()

	added, err := data.AddDrink("Tea")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = data.AddDrink("Tea")
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, []string{"Tea"}, data.Drinks)
}

func TestData_AddDrinkRejectsInvalidNames(t *testing.T) {
	for _, drink := range []string{"", "  ", "\t", "Tea\nCoffee", "Tea\r"} {
		data := NewData()
		added, err := data.AddDrink(drink)
		assert.ErrorIs(t, err, ErrInvalidName, "drink %q", drink)
		assert.False(t, added)
		assert.Empty(t, data.Drinks)
	}
}

func TestData_SetFavourite(t *testing.T) {
	data := NewData()
	_, err := data.AddPerson("Ann", "Lee", "")
	require.NoError(t, err)
	_, err = data.AddDrink("Tea")
	require.NoError(t, err)

	assert.ErrorIs(t, data.SetFavourite("Bob Smith", "Tea"), ErrUnknownPerson)
	assert.ErrorIs(t, data.SetFavourite("Ann Lee", "Cola"), ErrUnknownDrink)
	assert.ErrorIs(t, data.SetFavourite("Ann Lee", " "), ErrInvalidName)
	require.NoError(t, data.SetFavourite("Ann Lee", "Tea"))

	drink, ok := data.Favourites.Get("Ann Lee")
	assert.True(t, ok)
	assert.Equal(t, "Tea", drink)
}

func TestData_SetFavouriteRejectsSeparatorInName(t *testing.T) {
	// Loaded from a people file, so AddPerson's checks never ran.
	repo, _ := newTestRepo(t, testutil.DataFiles{
		People: "1,A:b,Lee,Tea\n",
		Drinks: "Tea\n",
	})
	data, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, data.SetFavourite("A:b Lee", "Tea"), ErrInvalidName)
	assert.Zero(t, data.Favourites.Len())
}

func TestData_MutationsSurviveSaveAndLoad(t *testing.T) {
	repo, _ := newTestRepo(t, testutil.DataFiles{})
	ctx := context.Background()

	data, err := repo.Load(ctx)
	require.NoError(t, err)

	_, err = data.AddPerson("Ann", "Lee", "Tea")
	require.NoError(t, err)
	_, err = data.AddPerson("A:b", "Lee", "Tea")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = data.AddDrink("Tea")
	require.NoError(t, err)
	_, err = data.AddDrink("Earl Grey: hot")
	require.NoError(t, err)
	_, err = data.AddDrink("")
	require.ErrorIs(t, err, ErrInvalidName)

	require.NoError(t, data.SetFavourite("Ann Lee", "Earl Grey: hot"))
	require.NoError(t, repo.Save(ctx, data))

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Diagnostics)
	assert.Equal(t, data.People, again.People)
	assert.Equal(t, []string{"Tea", "Earl Grey: hot"}, again.Drinks)
	assert.Equal(t, data.Favourites.All(), again.Favourites.All())
}
