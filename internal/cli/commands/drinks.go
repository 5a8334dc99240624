package commands

import (
	"github.com/spf13/cobra"
)

// NewDrinksCommand creates the drinks command group.
func NewDrinksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drinks",
		Aliases: []string{"drink"},
		Short:   "List and add drinks on the menu",
	}
	cmd.AddCommand(newDrinksListCommand(), newDrinksAddCommand())
	return cmd
}

func newDrinksListCommand() *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the drinks menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			drinks := data.Drinks
			if sorted {
				drinks = sortedStrings(drinks)
			}
			if cc.Renderer.IsStructured() {
				if drinks == nil {
					drinks = []string{}
				}
				return cc.Renderer.Structured(drinks)
			}

			rows := make([][]any, 0, len(drinks))
			for i, d := range drinks {
				rows = append(rows, []any{i + 1, d})
			}
			cc.Renderer.Table("drinks", []string{"#", "Drink"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort alphabetically instead of menu order")
	return cmd
}

func newDrinksAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a drink to the menu",
		Example: `  brewround drinks add "Flat white"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			added, err := data.AddDrink(args[0])
			if err != nil {
				return err
			}
			if !added {
				cc.Renderer.Warn("%s is already on the menu", args[0])
				return nil
			}
			if err := cc.Repo.Save(cmd.Context(), data); err != nil {
				return err
			}

			cc.Renderer.Success("Added %s", args[0])
			return nil
		},
	}
}
