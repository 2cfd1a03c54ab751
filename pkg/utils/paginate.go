package utils

// PageResult is a contiguous window over an ordered collection.
type PageResult[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	HasMore  bool `json:"hasMore"`
}

// Paginate clamps page to >=1 and pageSize to [1, maxPageSize], then
// slices the requested window. Pure; the input slice is not copied.
func Paginate[T any](items []T, page, pageSize, maxPageSize int) PageResult[T] {
	if maxPageSize < 1 {
		maxPageSize = 1
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(items)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult[T]{
		Items:    items[start:end],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  end < total,
	}
}
