package pagination

// Meta describes one fetched page in JSON output.
type Meta struct {
	Limit     int    `json:"limit"      yaml:"limit"`
	Fetched   int    `json:"fetched"    yaml:"fetched"`
	Matched   int    `json:"matched"    yaml:"matched"`
	Query     string `json:"query"      yaml:"query"`
	NextLimit int    `json:"next_limit" yaml:"next_limit"`
	HasMore   bool   `json:"has_more"   yaml:"has_more"`
}

// NewMeta creates page metadata. A page that came back short of its limit
// has reached the end of the catalog.
func NewMeta(params Params, query string, fetched, matched int) Meta {
	hasMore := params.Limit > 0 && fetched >= params.Limit
	next := params.Limit
	if hasMore {
		next = params.NextLimit()
	}
	return Meta{
		Limit:     params.Limit,
		Fetched:   fetched,
		Matched:   matched,
		Query:     query,
		NextLimit: next,
		HasMore:   hasMore,
	}
}
