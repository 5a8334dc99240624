package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string)
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name: "init empty directory",
			args: []string{},
			wantFiles: []string{
				"brewround.yaml",
				".gitignore",
				"data/people.csv",
				"data/drinks.txt",
				"data/favourites.txt",
			},
		},
		{
			name: "init existing config without force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "brewround.yaml"), []byte("existing"), 0600))
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "brewround.yaml"), []byte("existing"), 0600))
			},
			args:      []string{"--force"},
			wantFiles: []string{"brewround.yaml", "data/drinks.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Chdir(tmpDir)

			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			for _, f := range tt.wantFiles {
				_, err := os.Stat(filepath.Join(tmpDir, f))
				assert.NoError(t, err, "expected %q to exist", f)
			}
		})
	}
}

func TestInitIntoNewDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewInitCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"kitchen"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "created brewround.yaml")
	assert.Contains(t, buf.String(), "created data/drinks.txt")

	content, err := os.ReadFile(filepath.Join("kitchen", "brewround.yaml"))
	require.NoError(t, err)
	for _, want := range []string{"people_file: data/people.csv", "drinks_file:", "favourites_file:", "history_path:"} {
		assert.Contains(t, string(content), want)
	}

	drinks, err := os.ReadFile(filepath.Join("kitchen", "data", "drinks.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Tea\nCoffee\nWater\n", string(drinks))
}

func TestInitKeepsExistingDataFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("data", 0750))
	require.NoError(t, os.WriteFile(filepath.Join("data", "drinks.txt"), []byte("Cocoa\n"), 0600))

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	drinks, err := os.ReadFile(filepath.Join("data", "drinks.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Cocoa\n", string(drinks))
}

func TestRenameSpecialFiles(t *testing.T) {
	assert.Equal(t, ".gitignore", renameSpecialFiles("gitignore"))
	assert.Equal(t, "data/.gitignore", renameSpecialFiles("data/gitignore"))
	assert.Equal(t, "data/drinks.txt", renameSpecialFiles("data/drinks.txt"))
}
