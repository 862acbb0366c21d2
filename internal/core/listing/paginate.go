package listing

type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate returns the requested 1-based page. A size lower than 1 returns
// every item as a single page.
func Paginate[T any](items []T, number int, size int) ([]T, Page) {
	total := len(items)

	if size < 1 {
		return items, Page{Number: 1, Size: total, TotalItems: total, TotalPages: 1}
	}

	totalPages := total / size
	if total%size != 0 || totalPages == 0 {
		totalPages++
	}

	number = max(number, 1)

	page := Page{
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}

	// Checked before computing offsets, which would overflow for large numbers.
	if number > totalPages || total == 0 {
		return []T{}, page
	}

	start := (number - 1) * size
	end := min(start+size, total)

	return items[start:end], page
}
