package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Paging defaults and validation limits.
const (
	DefaultLimit     = 10
	DefaultStep      = 20
	MinLimit         = 0
	MaxLimit         = 10000
	MinStep          = 1
	MaxStep          = 1000
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidLimit      = errors.New("limit must be between 0 and 10000")
	ErrInvalidStep       = errors.New("step must be between 1 and 1000")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'attack:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the paging flags of a catalog command.
type Params struct {
	// Limit is the number of catalog entries to fetch.
	Limit int

	// Step is how much "load more" adds to Limit.
	Step int

	// Sort is an optional "field" or "field:order" expression.
	Sort string
}

// Validate checks the parameter bounds and the sort expression.
func (p Params) Validate() error {
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Step < MinStep || p.Step > MaxStep {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, p.Step)
	}
	if p.Sort != "" {
		field, _, err := ParseSort(p.Sort)
		if err != nil {
			return err
		}
		if !NewRecordSorter().IsValidField(field) {
			return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
				strings.Join(NewRecordSorter().GetValidFields(), ", "))
		}
	}
	return nil
}

// NextLimit returns the limit a "load more" would request.
func (p Params) NextLimit() int {
	return p.Limit + p.Step
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "name", "attack:desc", "id:asc"
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}
