package doalist

import "github.com/goresan/goresan/internal/domain"

// TotalPages returns the number of pages for count records
func TotalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

// PageSlice returns records[(page-1)*PageSize : page*PageSize] clamped to
// the slice bounds. Out-of-range pages yield an empty slice.
func PageSlice(records []domain.Doa, page int) []domain.Doa {
	// checked before multiplying so huge pages cannot wrap into range
	if page < 1 || page > TotalPages(len(records)) {
		return nil
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(records))
	return records[start:end]
}

// PageWindow returns at most three page numbers around page, biased left
// near the edges. No window is shown for a single page.
func PageWindow(page, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}
	// out-of-range pages show the nearest edge window
	page = max(1, min(page, totalPages))

	start := max(1, page-1)
	end := min(totalPages, start+maxPageButtons-1)
	if end-start < maxPageButtons-1 {
		start = max(1, end-(maxPageButtons-1))
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// HasMorePages reports whether pages exist past the window (the "..." marker)
func HasMorePages(window []int, totalPages int) bool {
	return len(window) > 0 && window[len(window)-1] < totalPages
}
