package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/cli/pagination"
	"github.com/rshade/pokecatch/internal/config"
	"github.com/rshade/pokecatch/internal/logging"
	"github.com/rshade/pokecatch/internal/tui"
	"github.com/rshade/pokecatch/internal/view"
)

// Output formats supported by the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

const (
	tabPadding   = 2
	defaultWidth = 120
)

// ErrUnsupportedFormat is returned for an unknown --output value.
var ErrUnsupportedFormat = errors.New("unsupported output format")

type listOptions struct {
	query  string
	output string
	plain  bool
}

// NewListCmd creates the list command, which fetches one page of the catalog
// and prints it without the interactive grid.
func NewListCmd() *cobra.Command {
	var (
		paging pagingFlags
		opts   listOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog as a table or JSON",
		Long: `Fetches the first --limit catalog entries, resolves each entry's details
and prints the entries whose name contains --query (case-insensitive).

Any failed request fails the whole command with a non-zero exit code.`,
		Example: `  # First ten entries as a table
  pokecatch list

  # Entries 1-50 containing "chu", as JSON
  pokecatch list --limit 50 --query chu --output json

  # Heaviest first
  pokecatch list --sort weight:desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			params, err := paging.params(cmd, cfg)
			if err != nil {
				return err
			}
			return runList(cmd, cfg, params, opts)
		},
	}

	paging.register(cmd, true)
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "only show entries whose name contains this text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"output format: table or json (defaults to output.default_format)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print a plain table even on a terminal")

	return cmd
}

// runList runs one fetch cycle and renders the filtered result.
func runList(cmd *cobra.Command, cfg *config.Config, params pagination.Params, opts listOptions) error {
	format := strings.ToLower(config.GetOutputFormat(opts.output))
	if format != OutputTable && format != OutputJSON {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)}
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	records, err := fetchCatalog(ctx, cfg, params.Limit)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Int("limit", params.Limit).Msg("catalog fetch failed")
		return fmt.Errorf("fetching catalog: %w", err)
	}

	visible := view.Filter(records, opts.query)
	if params.Sort != "" {
		field, order, _ := pagination.ParseSort(params.Sort)
		visible = pagination.NewRecordSorter().Sort(visible, field, order)
	}
	meta := pagination.NewMeta(params, strings.ToLower(opts.query), len(records), len(visible))
	log.Debug().Ctx(ctx).
		Int("fetched", meta.Fetched).
		Int("matched", meta.Matched).
		Msg("catalog page ready")

	w := cmd.OutOrStdout()
	if format == OutputJSON {
		return renderJSON(w, visible, meta)
	}

	if len(visible) == 0 {
		cmd.Println("No Pokémon match your search.")
		return nil
	}

	mode := tui.DetectOutputMode(opts.plain, false, true)
	if mode == tui.OutputModeStyled {
		_, err = fmt.Fprintln(w, tui.RenderGrid(visible, terminalWidth()))
		return err
	}
	return renderTable(w, visible)
}

// fetchCatalog runs List Acquisition followed by Detail Resolution.
func fetchCatalog(ctx context.Context, cfg *config.Config, limit int) ([]catalog.Pokemon, error) {
	return newCatalogClient(cfg).Fetch(ctx, limit, nil)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// renderTable writes records as an aligned text table.
func renderTable(w io.Writer, records []catalog.Pokemon) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "ID\tName\tTypes\tHeight\tWeight\tAttack\tAbility\tExperience")
	fmt.Fprintln(tw, "--\t----\t-----\t------\t------\t------\t-------\t----------")

	for _, p := range records {
		attack, _ := p.Attack()
		ability, _ := p.PrimaryAbility()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			tui.DisplayName(p.Name),
			strings.Join(p.TypeNames(), "/"),
			tui.FormatNumber(p.Height),
			tui.FormatNumber(p.Weight),
			tui.FormatNumber(attack),
			tui.DisplayName(ability),
			tui.FormatNumber(p.BaseExperience),
		)
	}
	return tw.Flush()
}

// listEntry is the JSON shape of one record.
type listEntry struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Types          []string `json:"types"`
	Height         int      `json:"height"`
	Weight         int      `json:"weight"`
	Attack         int      `json:"attack"`
	Ability        string   `json:"ability"`
	BaseExperience int      `json:"base_experience"`
	Artwork        string   `json:"artwork"`
}

type listDocument struct {
	Meta    pagination.Meta `json:"meta"`
	Pokemon []listEntry     `json:"pokemon"`
}

// renderJSON writes records and page metadata as an indented JSON document.
func renderJSON(w io.Writer, records []catalog.Pokemon, meta pagination.Meta) error {
	doc := listDocument{Meta: meta, Pokemon: make([]listEntry, 0, len(records))}
	for _, p := range records {
		attack, _ := p.Attack()
		ability, _ := p.PrimaryAbility()
		artwork, _ := p.Artwork()
		doc.Pokemon = append(doc.Pokemon, listEntry{
			ID:             p.ID,
			Name:           p.Name,
			Types:          p.TypeNames(),
			Height:         p.Height,
			Weight:         p.Weight,
			Attack:         attack,
			Ability:        ability,
			BaseExperience: p.BaseExperience,
			Artwork:        artwork,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
