// Package list holds the in-memory browsing state for an inspection
// collection: conjunctive per-field filters with facet lists, and fixed-size
// pagination over the filtered result.
package list

import (
	"sort"
	"strings"

	"facility-inspect/internal/domain"
)

// StatusField matches by exact equality; every other filterable field
// matches case-insensitively by substring.
const StatusField = "full_inspection_completed"

// TextFields are the filterable free-text columns, in display order.
var TextFields = []string{
	"building_name",
	"building_number",
	"facility_type",
	"function",
	"macro_area",
	"micro_area",
	"proponent",
	"zone",
}

// fieldValue reads a filterable column off a record.
func fieldValue(r *domain.InspectionRecord, field string) string {
	switch field {
	case "building_name":
		return r.BuildingName
	case "building_number":
		return r.BuildingNumber
	case "facility_type":
		return r.FacilityType
	case "function":
		return r.Function
	case "macro_area":
		return r.MacroArea
	case "micro_area":
		return r.MicroArea
	case "proponent":
		return r.Proponent
	case "zone":
		return r.Zone
	case StatusField:
		return r.FullInspectionCompleted
	}
	return ""
}

// State is the browsing session over one fetched collection. Filtering and
// pagination are pure synchronous recomputations; the source order is never
// disturbed.
type State struct {
	source   []domain.InspectionRecord
	filters  map[string]string
	filtered []domain.InspectionRecord
	page     int
	pageSize int
}

// New builds browsing state over records with the given page size.
func New(records []domain.InspectionRecord, pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &State{
		source:   records,
		filters:  make(map[string]string),
		page:     1,
		pageSize: pageSize,
	}
	s.recompute()
	return s
}

// SetFilter sets one predicate and recomputes the filtered collection. An
// empty value deactivates the predicate. Any change resets the page to 1.
func (s *State) SetFilter(field, value string) {
	if value == "" {
		delete(s.filters, field)
	} else {
		s.filters[field] = value
	}
	s.page = 1
	s.recompute()
}

// ClearFilters drops every predicate, restoring the full collection in its
// original order.
func (s *State) ClearFilters() {
	s.filters = make(map[string]string)
	s.page = 1
	s.recompute()
}

// recompute applies the conjunction of all active predicates in one stable
// pass over the source.
func (s *State) recompute() {
	if len(s.filters) == 0 {
		s.filtered = s.source
		return
	}
	out := make([]domain.InspectionRecord, 0, len(s.source))
	for i := range s.source {
		if s.matches(&s.source[i]) {
			out = append(out, s.source[i])
		}
	}
	s.filtered = out
}

func (s *State) matches(r *domain.InspectionRecord) bool {
	for field, want := range s.filters {
		got := fieldValue(r, field)
		if field == StatusField {
			if got != want {
				return false
			}
			continue
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// Filtered returns the current filtered collection, in source order.
func (s *State) Filtered() []domain.InspectionRecord {
	return s.filtered
}

// Facets returns, per filterable text field, the sorted distinct non-empty
// values observed in the unfiltered collection. Facet lists populate filter
// choice controls and deliberately do not narrow as other filters apply.
func (s *State) Facets() map[string][]string {
	out := make(map[string][]string, len(TextFields))
	for _, field := range TextFields {
		seen := make(map[string]struct{})
		var values []string
		for i := range s.source {
			v := fieldValue(&s.source[i], field)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		sort.Strings(values)
		out[field] = values
	}
	return out
}
