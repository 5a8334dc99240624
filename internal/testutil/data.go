package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DataFiles holds the raw contents of the three data files.
// Empty fields are not written, so the file reads as missing.
type DataFiles struct {
	People     string
	Drinks     string
	Favourites string
}

// DataPaths locates data files written by WriteDataFiles.
type DataPaths struct {
	People     string
	Drinks     string
	Favourites string
}

// WriteDataFiles writes files into a fresh temp directory.
func WriteDataFiles(t testing.TB, files DataFiles) DataPaths {
	t.Helper()

	dir := t.TempDir()
	paths := DataPaths{
		People:     filepath.Join(dir, "people.csv"),
		Drinks:     filepath.Join(dir, "drinks.txt"),
		Favourites: filepath.Join(dir, "favourites.txt"),
	}

	write := func(path, content string) {
		if content == "" {
			return
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	write(paths.People, files.People)
	write(paths.Drinks, files.Drinks)
	write(paths.Favourites, files.Favourites)

	return paths
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
