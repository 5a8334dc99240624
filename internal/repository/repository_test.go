package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, files testutil.DataFiles) (*Repository, Paths) {
	t.Helper()
	paths := Paths(testutil.WriteDataFiles(t, files))
	return New(paths, testutil.NewTestLogger(t)), paths
}

func TestRepository_Load(t *testing.T) {
	repo, _ := newTestRepo(t, testutil.DataFiles{
		People:     "1,Ann,Lee,Tea\n2,Bob,Smith,Cola\n",
		Drinks:     "Tea\nCoffee\nCola\nEspresso: double\n",
		Favourites: "Ann Lee:Tea\nBob Smith:Espresso: double\n",
	})

	data, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []*core.Person{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Drink: "Tea"},
		{ID: 2, FirstName: "Bob", LastName: "Smith", Drink: "Cola"},
	}, data.People)
	assert.Equal(t, []string{"Tea", "Coffee", "Cola", "Espresso: double"}, data.Drinks)
	assert.Equal(t, []core.Favourite{
		{Name: "Ann Lee", Drink: "Tea"},
		{Name: "Bob Smith", Drink: "Espresso: double"},
	}, data.Favourites.All())
	assert.Empty(t, data.Diagnostics)
}

func TestRepository_LoadSkipsInvalidFavourites(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantDiags []string
	}{
		{
			name:      "unknown person",
			line:      "Bob Smith:Cola",
			wantDiags: []string{"Bob Smith is not a known person"},
		},
		{
			name:      "unknown drink",
			line:      "Ann Lee:Whisky",
			wantDiags: []string{"Whisky is not a known drink"},
		},
		{
			name:      "both unknown",
			line:      "Bob Smith:Whisky",
			wantDiags: []string{"Bob Smith is not a known person", "Whisky is not a known drink"},
		},
		{
			name:      "no separator",
			line:      "Ann Lee Tea",
			wantDiags: []string{"Ann Lee Tea is not a name:drink pair"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newTestRepo(t, testutil.DataFiles{
				People:     "1,Ann,Lee,Tea\n",
				Drinks:     "Tea\nCola\n",
				Favourites: tt.line + "\n",
			})

			data, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiags, data.Diagnostics)
			assert.Equal(t, 0, data.Favourites.Len())
			assert.False(t, data.Favourites.Has("Bob Smith"))
		})
	}
}

func TestRepository_LoadDuplicateFavouriteLastWins(t *testing.T) {
	repo, _ := newTestRepo(t, testutil.DataFiles{
		People:     "1,Ann,Lee,Tea\n",
		Drinks:     "Tea\nCoffee\n",
		Favourites: "Ann Lee:Tea\nAnn Lee:Coffee\n",
	})

	data, err := repo.Load(context.Background())
	require.NoError(t, err)

	drink, ok := data.Favourites.Get("Ann Lee")
	require.True(t, ok)
	assert.Equal(t, "Coffee", drink)
}

func TestRepository_LoadInvalidID(t *testing.T) {
	repo, _ := newTestRepo(t, testutil.DataFiles{
		People: "1,Ann,Lee,Tea\nx,Bob,Smith,Cola\n",
	})

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRepository_LoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	repo := New(Paths{
		People:     filepath.Join(dir, "people.csv"),
		Drinks:     filepath.Join(dir, "drinks.txt"),
		Favourites: filepath.Join(dir, "favourites.txt"),
	}, nil)

	data, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.People)
	assert.Empty(t, data.Drinks)
	assert.Equal(t, 0, data.Favourites.Len())
}

func TestRepository_SaveRoundTrip(t *testing.T) {
	people := "3,Ann,Lee,Tea\n1,Bob,Smith,\"Cola, no ice\"\n"
	repo, paths := newTestRepo(t, testutil.DataFiles{
		People:     people,
		Drinks:     "Tea\nCola, no ice\n",
		Favourites: "Bob Smith:Cola, no ice\nAnn Lee:Tea\n",
	})
	ctx := context.Background()

	data, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, data))

	raw, err := os.ReadFile(paths.People)
	require.NoError(t, err)
	assert.Equal(t, people, string(raw))

	raw, err = os.ReadFile(paths.Favourites)
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith:Cola, no ice\nAnn Lee:Tea\n", string(raw))

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.People, again.People)
	assert.Equal(t, data.Drinks, again.Drinks)
	assert.Equal(t, data.Favourites.All(), again.Favourites.All())
}

func TestRepository_SaveWritesEachFileIndependently(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	paths := Paths{
		People:     filepath.Join(blocker, "people.csv"),
		Drinks:     filepath.Join(dir, "drinks.txt"),
		Favourites: filepath.Join(dir, "favourites.txt"),
	}
	repo := New(paths, testutil.NewTestLogger(t))

	data := NewData()
	data.Drinks = []string{"Tea"}

	err := repo.Save(context.Background(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save people")

	raw, readErr := os.ReadFile(paths.Drinks)
	require.NoError(t, readErr)
	assert.Equal(t, "Tea\n", string(raw))
	assert.FileExists(t, paths.Favourites)
}

func TestRepository_LoadCancelled(t *testing.T) {
	repo, _ := newTestRepo(t, testutil.DataFiles{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_LoadLogsSkippedFavourites(t *testing.T) {
	paths := Paths(testutil.WriteDataFiles(t, testutil.DataFiles{
		People:     "1,Ann,Lee,Tea\n",
		Drinks:     "Tea\n",
		Favourites: "Bob Smith:Tea\n",
	}))
	logger, logs := testutil.NewCaptureLogger()

	_, err := New(paths, logger).Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "skipping favourite")
	assert.Contains(t, logs.String(), "Bob Smith is not a known person")
}
