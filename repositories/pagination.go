// File: /repositories/pagination.go
package repositories

// PageMeta mirrors the pagination block returned next to every listed page.
// PrevPage and NextPage are null when there is no such page.
type PageMeta struct {
	Page       int   `json:"page"`
	Pages      int   `json:"pages"`
	TotalCount int64 `json:"total_count"`
	PrevPage   *int  `json:"prev_page"`
	NextPage   *int  `json:"next_page"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func buildPageMeta(page, perPage int, total int64) PageMeta {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	meta := PageMeta{
		Page:       page,
		Pages:      pages,
		TotalCount: total,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
	if meta.HasPrev {
		prev := page - 1
		meta.PrevPage = &prev
	}
	if meta.HasNext {
		next := page + 1
		meta.NextPage = &next
	}
	return meta
}
