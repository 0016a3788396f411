package types

// Pagination - метаданные страницы в ответе списка.
type Pagination struct {
	TotalItems   uint64 `json:"totalItems"`
	ItemCount    int    `json:"itemCount"`
	ItemsPerPage int    `json:"itemsPerPage"`
	TotalPages   int    `json:"totalPages"`
	CurrentPage  int    `json:"currentPage"`
}

// NewPagination считает метаданные по общему числу записей и размеру текущей страницы.
// При GetAll itemsPerPage и currentPage остаются такими, как их запросили.
func NewPagination(total uint64, itemCount int, filter PageFilter) Pagination {
	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + uint64(filter.Limit) - 1) / uint64(filter.Limit))
	}
	return Pagination{
		TotalItems:   total,
		ItemCount:    itemCount,
		ItemsPerPage: filter.Limit,
		TotalPages:   totalPages,
		CurrentPage:  filter.Page,
	}
}

// Page - результат постраничной выборки.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

func NewPage[T any](items []T, total uint64, filter PageFilter) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{Items: items, Pagination: NewPagination(total, len(items), filter)}
}
