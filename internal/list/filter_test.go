package list

import (
	"testing"

	"facility-inspect/internal/domain"

	"github.com/stretchr/testify/require"
)

func rec(id int, macro, proponent string) domain.InspectionRecord {
	return domain.InspectionRecord{
		ID:                      id,
		BuildingName:            "B",
		MacroArea:               macro,
		Proponent:               proponent,
		FullInspectionCompleted: "No",
	}
}

func ids(records []domain.InspectionRecord) []int {
	out := make([]int, 0, len(records))
	for i := range records {
		out = append(out, records[i].ID)
	}
	return out
}

func TestFilterConjunction(t *testing.T) {
	records := []domain.InspectionRecord{
		rec(1, "North", "A"),
		rec(2, "North", "B"),
		rec(3, "South", "A"),
	}
	st := New(records, 20)
	st.SetFilter("macro_area", "North")
	st.SetFilter("proponent", "A")

	require.Equal(t, []int{1}, ids(st.Filtered()))
}

func TestTextMatchIsCaseInsensitiveSubstring(t *testing.T) {
	records := []domain.InspectionRecord{
		rec(1, "Northern Ridge", "A"),
		rec(2, "South", "A"),
	}
	st := New(records, 20)
	st.SetFilter("macro_area", "north")
	require.Equal(t, []int{1}, ids(st.Filtered()))

	st.SetFilter("macro_area", "RIDGE")
	require.Equal(t, []int{1}, ids(st.Filtered()))
}

func TestStatusMatchesExactly(t *testing.T) {
	a := rec(1, "North", "A")
	a.FullInspectionCompleted = "Yes"
	b := rec(2, "North", "A")
	b.FullInspectionCompleted = "Partial"

	st := New([]domain.InspectionRecord{a, b}, 20)
	st.SetFilter(StatusField, "Yes")
	require.Equal(t, []int{1}, ids(st.Filtered()))

	// substring of an enum member is not a match for the status predicate
	st.SetFilter(StatusField, "Ye")
	require.Empty(t, st.Filtered())
}

func TestFilterThenClearRestoresOriginalOrder(t *testing.T) {
	records := []domain.InspectionRecord{
		rec(3, "South", "A"),
		rec(1, "North", "A"),
		rec(2, "North", "B"),
	}
	st := New(records, 20)
	st.SetFilter("macro_area", "North")
	require.Equal(t, []int{1, 2}, ids(st.Filtered()))

	st.ClearFilters()
	require.Equal(t, []int{3, 1, 2}, ids(st.Filtered()))
}

func TestFilteringPreservesSourceOrder(t *testing.T) {
	records := []domain.InspectionRecord{
		rec(5, "North", "A"),
		rec(2, "North", "A"),
		rec(9, "South", "A"),
		rec(1, "North", "A"),
	}
	st := New(records, 20)
	st.SetFilter("macro_area", "North")
	require.Equal(t, []int{5, 2, 1}, ids(st.Filtered()))
}

func TestPredicateChangeResetsPage(t *testing.T) {
	var records []domain.InspectionRecord
	for i := 1; i <= 45; i++ {
		records = append(records, rec(i, "North", "A"))
	}
	st := New(records, 20)
	st.SetPage(3)
	require.Equal(t, 3, st.Page().Number)

	st.SetFilter("proponent", "A")
	require.Equal(t, 1, st.Page().Number)

	st.SetPage(2)
	st.ClearFilters()
	require.Equal(t, 1, st.Page().Number)
}

func TestEmptyPredicateIsInactive(t *testing.T) {
	records := []domain.InspectionRecord{rec(1, "North", "A"), rec(2, "South", "B")}
	st := New(records, 20)
	st.SetFilter("macro_area", "North")
	st.SetFilter("macro_area", "")
	require.Equal(t, []int{1, 2}, ids(st.Filtered()))
}

func TestFacetsComeFromUnfilteredCollection(t *testing.T) {
	records := []domain.InspectionRecord{
		rec(1, "North", "A"),
		rec(2, "South", "B"),
		rec(3, "South", ""),
	}
	st := New(records, 20)
	st.SetFilter("proponent", "A")

	facets := st.Facets()
	// facet lists do not narrow as other filters are applied
	require.Equal(t, []string{"North", "South"}, facets["macro_area"])
	// distinct, sorted, empty values dropped
	require.Equal(t, []string{"A", "B"}, facets["proponent"])
}
