package commands

import (
	"fmt"

	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/prompt"
	"github.com/leapstack-labs/brewround/internal/round"
	"github.com/spf13/cobra"
)

// RoundOptions holds options for the round command.
type RoundOptions struct {
	Record bool
	Save   bool
}

// NewRoundCommand creates the round command.
func NewRoundCommand() *cobra.Command {
	opts := &RoundOptions{}

	cmd := &cobra.Command{
		Use:     "round",
		Aliases: []string{"build"},
		Short:   "Build a drinks round interactively",
		Long: `Build a drinks round by picking a person and then a drink for them,
repeating until everyone is served.

People with a favourite drink are offered a "Usual" shortcut at the end of
the drinks menu. The finished round is printed and, unless --record=false,
kept in the round history.`,
		Example: `  # Build a round and record it
  brewround round

  # Build a round without touching history, then save the data files
  brewround round --record=false --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRound(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Record, "record", true, "Record the finished round in history")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Save people, drinks and favourites after the round")

	return cmd
}

func runRound(cmd *cobra.Command, opts *RoundOptions) error {
	ctx := cmd.Context()
	cc := NewCommandContext(cmd)
	if !cmd.Flags().Changed("record") {
		opts.Record = cc.Cfg.RecordHistory
	}

	data, err := cc.Load(cmd)
	if err != nil {
		return err
	}

	theme := prompt.NewTheme(cc.Renderer.Lipgloss())
	p, screen, release, err := openPrompter(cmd, cc.Renderer, theme)
	if err != nil {
		return err
	}
	defer release()

	builder := round.NewBuilder(p, screen, cmd.OutOrStdout(), cc.Logger).WithTheme(theme)
	r, err := builder.Build(ctx, core.NewRound(), data.Favourites, data.People, data.Drinks)
	if err != nil {
		return fmt.Errorf("round not finished: %w", err)
	}

	if cc.Renderer.IsStructured() {
		if err := cc.Renderer.Structured(r); err != nil {
			return err
		}
	} else {
		r.PrintOrder(cmd.OutOrStdout())
	}

	if opts.Record {
		store, err := cc.OpenHistory(cmd)
		if err != nil {
			return err
		}
		defer closeQuietly(store, cc.Logger, "history")

		id, err := store.RecordRound(ctx, r)
		if err != nil {
			return err
		}
		if !cc.Renderer.IsStructured() {
			cc.Renderer.Success("Recorded round %s", id)
		}
	}

	if opts.Save {
		if err := cc.Repo.Save(ctx, data); err != nil {
			return err
		}
		if !cc.Renderer.IsStructured() {
			cc.Renderer.Success("Saved data")
		}
	}

	return nil
}
