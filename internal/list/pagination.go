package list

import "facility-inspect/internal/domain"

// DefaultPageSize matches the list view's fixed page size.
const DefaultPageSize = 20

// Ellipsis is the collapsed-gap marker in a page window.
const Ellipsis = -1

// Page is one displayed slice of a filtered collection.
type Page struct {
	Items      []domain.InspectionRecord
	Number     int // the page actually shown after clamping
	TotalPages int
	TotalItems int
}

// PageCount returns ceil(total/size); an empty collection still has one
// (empty) page so the current page number stays in range.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Paginate slices records into the requested page, clamping an out-of-range
// page number to the nearest bound rather than erroring.
func Paginate(records []domain.InspectionRecord, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	totalPages := PageCount(len(records), size)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	lo := (page - 1) * size
	hi := lo + size
	if lo > len(records) {
		lo = len(records)
	}
	if hi > len(records) {
		hi = len(records)
	}
	return Page{
		Items:      records[lo:hi],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: len(records),
	}
}

// SetPage moves the browsing state to the requested page, clamped to range.
func (s *State) SetPage(page int) {
	totalPages := PageCount(len(s.filtered), s.pageSize)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	s.page = page
}

// Page returns the currently displayed slice.
func (s *State) Page() Page {
	return Paginate(s.filtered, s.page, s.pageSize)
}

// Window computes the page-number display row: always page 1 and the last
// page, up to one page either side of the current page, and a single
// Ellipsis marker for any gap of more than one skipped page. No duplicates,
// nothing out of range.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	keep := func(p int) bool {
		return p == 1 || p == totalPages || (p >= current-1 && p <= current+1)
	}
	var out []int
	prev := 0
	for p := 1; p <= totalPages; p++ {
		if !keep(p) {
			continue
		}
		switch gap := p - prev; {
		case prev == 0 || gap == 1:
			// adjacent, nothing skipped
		case gap == 2:
			// a single skipped page reads better shown than collapsed
			out = append(out, p-1)
		default:
			out = append(out, Ellipsis)
		}
		out = append(out, p)
		prev = p
	}
	return out
}
