package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/brewround/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter config and data files",
		Long: `Create a brewround.yaml and empty data files to get a round going.

This creates:
  - brewround.yaml
  - data/people.csv
  - data/drinks.txt with a few drinks on the menu
  - data/favourites.txt
  - .gitignore excluding the round history`,
		Example: `  # Initialize in the current directory
  brewround init

  # Initialize in a new directory
  brewround init office-kitchen

  # Overwrite existing files
  brewround init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	r := NewCommandContext(cmd).Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.DefaultConfigFile)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	}

	written, err := copyTemplate(dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize %s: %w", dir, err)
	}

	if r.IsStructured() {
		return r.Structured(written)
	}

	for _, f := range written {
		r.Success("created %s", f)
	}
	w := r.Writer()
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Next steps:")
	_, _ = fmt.Fprintln(w, "  brewround people add <first> <last> --drink <drink>")
	_, _ = fmt.Fprintln(w, "  brewround favourites set <full name> <drink>")
	_, _ = fmt.Fprintln(w, "  brewround round")
	return nil
}
