package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// Paginate returns the page-th window of perPage items from items.
// Pages past the end yield an empty slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return items
	}
	start := CalculateOffset(page, perPage)
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
