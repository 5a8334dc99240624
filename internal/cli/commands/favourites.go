package commands

import (
	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/spf13/cobra"
)

// NewFavouritesCommand creates the favourites command group.
func NewFavouritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favourites",
		Aliases: []string{"favourite", "favs"},
		Short:   "List and set favourite drinks",
	}
	cmd.AddCommand(newFavouritesListCommand(), newFavouritesSetCommand())
	return cmd
}

func newFavouritesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List everyone's favourite drink",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			favs := data.Favourites.All()
			if cc.Renderer.IsStructured() {
				if favs == nil {
					favs = []core.Favourite{}
				}
				return cc.Renderer.Structured(favs)
			}

			rows := make([][]any, 0, len(favs))
			for _, f := range favs {
				rows = append(rows, []any{f.Name, f.Drink})
			}
			cc.Renderer.Table("favourites", []string{"Name", "Drink"}, rows)
			return nil
		},
	}
}

func newFavouritesSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "set <full-name> <drink>",
		Short:   "Set a person's favourite drink",
		Example: `  brewround favourites set "Ann Lee" Tea`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			if err := data.SetFavourite(args[0], args[1]); err != nil {
				return err
			}
			if err := cc.Repo.Save(cmd.Context(), data); err != nil {
				return err
			}

			cc.Renderer.Success("%s's favourite is now %s", args[0], args[1])
			return nil
		},
	}
}
