package response

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// HasPrev and HasNext drive the pager links in templates.
func (m PaginationMeta) HasPrev() bool { return m.Page > 1 }
func (m PaginationMeta) HasNext() bool { return m.Page < m.TotalPages }
func (m PaginationMeta) PrevPage() int { return m.Page - 1 }
func (m PaginationMeta) NextPage() int { return m.Page + 1 }

func NewPaginationMeta(page, perPage int, total int64) PaginationMeta {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return PaginationMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	return &PaginatedResponse[T]{
		Data:       data,
		Pagination: NewPaginationMeta(page, perPage, total),
	}
}
