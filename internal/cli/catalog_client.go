package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/cli/pagination"
	"github.com/rshade/pokecatch/internal/config"
	"github.com/rshade/pokecatch/pkg/version"
)

// newCatalogClient builds a catalog client from the effective configuration.
func newCatalogClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(catalog.Options{
		BaseURL:        cfg.Catalog.BaseURL,
		Timeout:        cfg.Catalog.Timeout,
		UserAgent:      userAgent(cfg.Catalog.UserAgent),
		MaxConcurrency: cfg.Catalog.MaxConcurrency,
	})
}

// userAgent tags product with the build version, for example
// "pokecatch/1.2.0". A build whose version is not semver reports "unknown".
func userAgent(product string) string {
	v, err := version.Parse()
	if err != nil {
		return product + "/unknown"
	}
	return fmt.Sprintf("%s/%s", product, v.String())
}

// pagingFlags are the --limit / --step / --sort flags shared by browse and list.
type pagingFlags struct {
	limit int
	step  int
	sort  string
}

func (f *pagingFlags) register(cmd *cobra.Command, withSort bool) {
	cmd.Flags().IntVarP(&f.limit, "limit", "n", pagination.DefaultLimit,
		"number of catalog entries to fetch (defaults to catalog.page_size)")
	cmd.Flags().IntVar(&f.step, "step", pagination.DefaultStep,
		"entries added by each \"load more\" (defaults to catalog.page_step)")
	if withSort {
		cmd.Flags().StringVar(&f.sort, "sort", "",
			"sort by field[:asc|desc]: id, name, height, weight, attack, experience")
	}
}

// params resolves the flags against the configuration. Flags that were not
// set explicitly take the configured value.
func (f *pagingFlags) params(cmd *cobra.Command, cfg *config.Config) (pagination.Params, error) {
	p := pagination.Params{Limit: cfg.Catalog.PageSize, Step: cfg.Catalog.PageStep, Sort: f.sort}
	if cmd.Flags().Changed("limit") {
		p.Limit = f.limit
	}
	if cmd.Flags().Changed("step") {
		p.Step = f.step
	}
	if err := p.Validate(); err != nil {
		return p, &ExitError{Code: ExitUsage, Err: err}
	}
	return p, nil
}
