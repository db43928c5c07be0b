package roster

// PageSize is the fixed number of rows shown per page.
const PageSize = 10

// TotalPages returns ceil(n / PageSize).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage bounds page to [1, max(1, total)].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// PageBounds returns the half-open slice bounds of page within n rows.
func PageBounds(page, n int) (start, end int) {
	page = ClampPage(page, TotalPages(n))
	start = (page - 1) * PageSize
	if start > n {
		start = n
	}
	end = start + PageSize
	if end > n {
		end = n
	}
	return start, end
}

// PageWindow returns the page numbers to offer as direct jumps. When total
// exceeds span the window is centred on current and shifted to stay within
// [1, total].
func PageWindow(current, total, span int) []int {
	if total <= 0 {
		return nil
	}
	if span <= 0 || span > total {
		span = total
	}
	current = ClampPage(current, total)
	first := current - span/2
	if first < 1 {
		first = 1
	}
	if last := first + span - 1; last > total {
		first = total - span + 1
	}
	pages := make([]int, span)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}
