package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pokecatch/internal/cli/pagination"
	"github.com/rshade/pokecatch/internal/config"
	"github.com/rshade/pokecatch/internal/logging"
	"github.com/rshade/pokecatch/internal/tui"
)

// NewBrowseCmd creates the browse command, the interactive card grid.
func NewBrowseCmd() *cobra.Command {
	var (
		paging pagingFlags
		query  string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog as an interactive card grid",
		Long: `Opens a searchable card grid. The first --limit entries are fetched and
resolved in parallel; "m" loads --step more by refetching the larger page.

Keys: / search, esc clear search, m or + load more, r reload,
arrows or j/k scroll, q quit.

When stdin or stdout is not a terminal, browse prints the same page the way
"pokecatch list" does.`,
		Example: `  # Default page of ten
  pokecatch browse

  # Start with 40 entries, pre-filtered to "chu"
  pokecatch browse --limit 40 --query chu`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			params, err := paging.params(cmd, cfg)
			if err != nil {
				return err
			}
			return runBrowse(cmd, cfg, params, query, plain)
		},
	}

	paging.register(cmd, false)
	cmd.Flags().StringVarP(&query, "query", "q", "", "initial search text")
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table instead of opening the grid")

	return cmd
}

func runBrowse(cmd *cobra.Command, cfg *config.Config, params pagination.Params, query string, plain bool) error {
	ctx := cmd.Context()

	mode := tui.DetectOutputMode(plain, false, false)
	if mode != tui.OutputModeInteractive {
		logger.Debug().Ctx(ctx).Str("output_mode", mode.String()).Msg("not interactive, printing list")
		return runList(cmd, cfg, params, listOptions{query: query, output: OutputTable, plain: plain})
	}

	model := tui.NewCatalogModel(ctx, newCatalogClient(cfg), tui.Options{
		Limit: params.Limit,
		Step:  params.Step,
		Query: query,
	})
	// Stderr logs would draw over the alternate screen; flush them on exit.
	if hold := logging.StderrHoldFromContext(ctx); hold != nil {
		hold.Hold()
		defer func() { _ = hold.Release() }()
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return programError(ctx, err)
}

// programError maps the result of a finished TUI run. A program killed
// because ctx was cancelled (SIGINT or SIGTERM) is a clean exit.
func programError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info().Ctx(ctx).Msg("interactive TUI stopped by signal")
		return nil
	}
	return fmt.Errorf("failed to run interactive TUI: %w", err)
}
