package pagination

import (
	"sort"

	"github.com/rshade/pokecatch/internal/catalog"
)

// RecordSorter sorts catalog.Pokemon records by a named field.
type RecordSorter struct {
	validFields map[string]bool
}

// NewRecordSorter creates a RecordSorter with the supported sort fields.
func NewRecordSorter() *RecordSorter {
	return &RecordSorter{
		validFields: map[string]bool{
			"id":         true,
			"name":       true,
			"height":     true,
			"weight":     true,
			"attack":     true,
			"experience": true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *RecordSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *RecordSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of records. An invalid field returns the input
// unchanged, which keeps the catalog's own order.
func (s *RecordSorter) Sort(records []catalog.Pokemon, field, order string) []catalog.Pokemon {
	if !s.IsValidField(field) {
		return records
	}

	sorted := make([]catalog.Pokemon, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping keeps the sort stable for descending order.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "id":
			return sorted[i].ID < sorted[j].ID
		case "name":
			return sorted[i].Name < sorted[j].Name
		case "height":
			return sorted[i].Height < sorted[j].Height
		case "weight":
			return sorted[i].Weight < sorted[j].Weight
		case "attack":
			return attackOf(sorted[i]) < attackOf(sorted[j])
		case "experience":
			return sorted[i].BaseExperience < sorted[j].BaseExperience
		default:
			return false
		}
	})

	return sorted
}

// attackOf returns the attack stat, or 0 when the record has none.
func attackOf(p catalog.Pokemon) int {
	v, _ := p.Attack()
	return v
}
