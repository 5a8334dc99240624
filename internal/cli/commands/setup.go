package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/brewround/internal/cli/config"
	"github.com/leapstack-labs/brewround/internal/cli/output"
	"github.com/leapstack-labs/brewround/internal/history"
	"github.com/leapstack-labs/brewround/internal/prompt"
	"github.com/leapstack-labs/brewround/internal/repository"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Repo     *repository.Repository
	Renderer *output.Renderer
}

// NewCommandContext builds the dependencies for cmd from its context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Repo: repository.New(repository.Paths{
			People:     cfg.PeopleFile,
			Drinks:     cfg.DrinksFile,
			Favourites: cfg.FavouritesFile,
		}, logger),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// Load reads the data files and reports skipped favourites as warnings.
func (c *CommandContext) Load(cmd *cobra.Command) (*repository.Data, error) {
	data, err := c.Repo.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, d := range data.Diagnostics {
		c.Renderer.Warn("%s", d)
	}
	return data, nil
}

// OpenHistory opens the round history database.
// The caller must close the returned store.
func (c *CommandContext) OpenHistory(cmd *cobra.Command) (*history.Store, error) {
	return history.Open(cmd.Context(), c.Cfg.HistoryPath, c.Logger)
}

// openPrompter picks terminal line editing when both ends of the command
// are a TTY, and plain line reading otherwise. The returned func releases
// the terminal.
func openPrompter(cmd *cobra.Command, r *output.Renderer, theme prompt.Theme) (prompt.Prompter, prompt.Screen, func(), error) {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if in == os.Stdin && output.IsTerminal(os.Stdin) && r.IsTTY() {
		tr, err := prompt.NewTerminalReader("> ")
		if err != nil {
			return nil, nil, nil, err
		}
		return prompt.NewLinePrompter(tr, out, theme), prompt.NewTermScreen(out), func() { _ = tr.Close() }, nil
	}

	return prompt.NewLinePrompter(prompt.NewScannerReader(in), out, theme), prompt.NopScreen{}, func() {}, nil
}

// closeQuietly closes c, logging any failure.
func closeQuietly(c io.Closer, logger *slog.Logger, what string) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close "+what, slog.String("error", err.Error()))
	}
}
