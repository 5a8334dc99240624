package commands

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed all:templates
var templateFS embed.FS

const starterTemplate = "templates/starter"

// copyTemplate writes the embedded starter files under targetDir and
// returns the relative paths it wrote. Existing files are left alone
// unless force is set.
func copyTemplate(targetDir string, force bool) ([]string, error) {
	var written []string

	err := fs.WalkDir(templateFS, starterTemplate, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == starterTemplate {
			return nil
		}

		rel := renameSpecialFiles(p[len(starterTemplate)+1:])
		target := filepath.Join(targetDir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0750)
		}

		if !force {
			if _, err := os.Stat(target); err == nil {
				return nil
			}
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0600); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})

	return written, err
}

// renameSpecialFiles maps embedded names to dotfiles, which embed
// would otherwise need listing by hand.
func renameSpecialFiles(p string) string {
	if path.Base(p) == "gitignore" {
		return path.Join(path.Dir(p), ".gitignore")
	}
	return p
}
