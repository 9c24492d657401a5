package listing

// DefaultPerPage is the product grid size used when a caller passes a
// non-positive items-per-page.
const DefaultPerPage = 8

// Page is one page of a listing plus the metadata a pager needs.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Empty reports whether the listing matched nothing at all.
func (p Page[T]) Empty() bool { return p.TotalItems == 0 }

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// TotalPages returns ceil(count/perPage), never less than 1.
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// ClampPage pulls page into [1, TotalPages(count, perPage)].
func ClampPage(page, count, perPage int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(count, perPage); page > last {
		return last
	}
	return page
}

// Paginate slices out the requested page. Out-of-range pages are clamped,
// never rejected.
//
// Callers must reset page to 1 whenever the filter or page size changes;
// Paginate is stateless and cannot tell.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page = ClampPage(page, len(items), perPage)

	start := (page - 1) * perPage
	end := min(start+perPage, len(items))

	pageItems := make([]T, 0, end-start)
	pageItems = append(pageItems, items[start:end]...)

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		PerPage:    perPage,
		TotalPages: TotalPages(len(items), perPage),
		TotalItems: len(items),
	}
}
