package commands

import (
	"github.com/leapstack-labs/brewround/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command group.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse recorded rounds",
	}
	cmd.AddCommand(newHistoryListCommand(), newHistoryShowCommand())
	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded rounds, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			store, err := cc.OpenHistory(cmd)
			if err != nil {
				return err
			}
			defer closeQuietly(store, cc.Logger, "history")

			rounds, err := store.ListRounds(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if cc.Renderer.IsStructured() {
				if rounds == nil {
					rounds = []history.Summary{}
				}
				return cc.Renderer.Structured(rounds)
			}

			rows := make([][]any, 0, len(rounds))
			for _, r := range rounds {
				rows = append(rows, []any{r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"), r.Orders})
			}
			cc.Renderer.Table("rounds", []string{"ID", "Started", "Drinks"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rounds to show (0 for all)")
	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the orders of a recorded round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			store, err := cc.OpenHistory(cmd)
			if err != nil {
				return err
			}
			defer closeQuietly(store, cc.Logger, "history")

			r, err := store.GetRound(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cc.Renderer.IsStructured() {
				return cc.Renderer.Structured(r)
			}

			rows := make([][]any, 0, len(r.Orders))
			for _, o := range r.Orders {
				rows = append(rows, []any{o.Name, o.Drink})
			}
			cc.Renderer.Table("orders in round "+r.ID, []string{"Name", "Drink"}, rows)
			return nil
		},
	}
}
