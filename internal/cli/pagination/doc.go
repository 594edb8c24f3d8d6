// Package pagination provides the paging and sorting flags shared by the
// catalog commands.
//
// This package contains:
//   - Params: --limit / --step / --sort flag values and validation
//   - Meta: metadata describing one fetched page for JSON output
//   - RecordSorter: stable sorting of detail records by a named field
//
// Paging is "grow the limit and refetch everything": a page is always the
// first Limit entries of the catalog, and the next page is Limit+Step.
package pagination
