package commands

import (
	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/spf13/cobra"
)

// NewPeopleCommand creates the people command group.
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "List and add people",
	}
	cmd.AddCommand(newPeopleListCommand(), newPeopleAddCommand())
	return cmd
}

func newPeopleListCommand() *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List everyone on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			people := data.People
			if sorted {
				people = sortedPeople(people)
			}
			if cc.Renderer.IsStructured() {
				if people == nil {
					people = []*core.Person{}
				}
				return cc.Renderer.Structured(people)
			}

			rows := make([][]any, 0, len(people))
			for _, p := range people {
				favourite, _ := data.Favourites.Get(p.FullName())
				rows = append(rows, []any{p.ID, p.FullName(), p.Drink, favourite})
			}
			cc.Renderer.Table("people", []string{"ID", "Name", "Drink", "Favourite"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort by name instead of file order")
	return cmd
}

func newPeopleAddCommand() *cobra.Command {
	var drink string

	cmd := &cobra.Command{
		Use:     "add <first-name> <last-name>",
		Short:   "Add a person to the roster",
		Example: `  brewround people add Ann Lee --drink Tea`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			data, err := cc.Load(cmd)
			if err != nil {
				return err
			}

			p, err := data.AddPerson(args[0], args[1], drink)
			if err != nil {
				return err
			}
			if err := cc.Repo.Save(cmd.Context(), data); err != nil {
				return err
			}

			cc.Renderer.Success("Added %s (id %d)", p.FullName(), p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&drink, "drink", "", "The person's drink")
	return cmd
}
