package model

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Limit: DefaultLimit}
}

// ceil(total/limit)。total=0 や limit<=0 は 0。
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// 現在ページの [start, end) を返す。範囲外なら start=end。
func (p Pagination) Bounds(n int) (int, int) {
	if p.Page < 1 || p.Limit < 1 {
		return 0, 0
	}
	start := (p.Page - 1) * p.Limit
	if start >= n {
		return n, n
	}
	end := start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}
