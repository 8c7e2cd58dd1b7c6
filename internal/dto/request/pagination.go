package request

const (
	DefaultPerPage = 24
	MaxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// NewPaginatedRequest clamps page and perPage into range.
func NewPaginatedRequest(page, perPage int) *PaginatedRequest {
	p := &PaginatedRequest{Page: page, PerPage: perPage}
	if p.Page < 1 {
		p.Page = 1
	}
	p.PerPage = p.Limit()
	return p
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
