package pagination

// Paginate slices items into the requested page and reports the page count.
//
// totalPages is ceil(len(items)/pageSize) and is 0 for an empty input;
// callers must present the zero-page state themselves. A page before 1 or
// past totalPages yields an empty slice: no clamping happens here, page
// transitions clamp explicitly where they want that behavior.
func Paginate[T any](items []T, pageSize, page int) (pageItems []T, totalPages int) {
	if pageSize < 1 {
		return []T{}, 0
	}

	totalPages = len(items) / pageSize
	if len(items)%pageSize > 0 {
		totalPages++
	}

	if page < 1 || page > totalPages {
		return []T{}, totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, totalPages
}

// Result wraps one page of items with presentation metadata.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewResult paginates items and wraps the requested page in a Result.
func NewResult[T any](items []T, pageSize, page int) Result[T] {
	pageItems, totalPages := Paginate(items, pageSize, page)
	return Result[T]{
		Data:       pageItems,
		TotalCount: len(items),
		Page:       page,
		PerPage:    pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}
}
