// Package stats computes the aggregate view of an inspection collection:
// completion counts, facility-type breakdown, condition histograms and the
// distribution of building systems.
package stats

import (
	"sort"

	"facility-inspect/internal/domain"
)

// Summary is the aggregate statistics over one collection.
type Summary struct {
	Total      int
	Completed  int // full_inspection_completed == "Yes"
	Incomplete int // everything else, including "Partial"

	FacilitiesByType map[string]int

	ExteriorConditions map[string]int
	InteriorConditions map[string]int
	RoofingConditions  map[string]int

	HVACTypeCounts    map[string]int
	PowerSourceCounts map[string]int

	SprinklerCounts map[string]int
	FireAlarmCounts map[string]int
}

// Compute aggregates the collection in a single pass. Every member of a
// set-valued field counts, free-text "Other" entries included.
func Compute(records []domain.InspectionRecord) Summary {
	s := Summary{
		Total:              len(records),
		FacilitiesByType:   make(map[string]int),
		ExteriorConditions: emptyConditionCounts(),
		InteriorConditions: emptyConditionCounts(),
		RoofingConditions:  emptyConditionCounts(),
		HVACTypeCounts:     make(map[string]int),
		PowerSourceCounts:  make(map[string]int),
		SprinklerCounts:    map[string]int{"Yes": 0, "No": 0},
		FireAlarmCounts:    map[string]int{"Yes": 0, "No": 0},
	}

	for i := range records {
		r := &records[i]
		if r.FullInspectionCompleted == string(domain.CompletionYes) {
			s.Completed++
		} else {
			s.Incomplete++
		}
		if r.FacilityType != "" {
			s.FacilitiesByType[r.FacilityType]++
		}
		if r.ExteriorCladdingCondition != "" {
			s.ExteriorConditions[r.ExteriorCladdingCondition]++
		}
		if r.InteriorArchitecturalCondition != "" {
			s.InteriorConditions[r.InteriorArchitecturalCondition]++
		}
		if r.RoofingCondition != "" {
			s.RoofingConditions[r.RoofingCondition]++
		}
		for _, t := range r.HVACType {
			if t != "" {
				s.HVACTypeCounts[t]++
			}
		}
		for _, p := range r.PowerSource {
			if p != "" {
				s.PowerSourceCounts[p]++
			}
		}
		if r.Sprinkler != "" {
			s.SprinklerCounts[r.Sprinkler]++
		}
		if r.FireAlarm != "" {
			s.FireAlarmCounts[r.FireAlarm]++
		}
	}
	return s
}

func emptyConditionCounts() map[string]int {
	m := make(map[string]int, len(domain.ConditionVocabulary))
	for _, c := range domain.ConditionVocabulary {
		m[c] = 0
	}
	return m
}

// SortedKeys returns the keys of a count map in lexical order, for stable
// rendering.
func SortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
