package query

// PageInfo is the metadata for one rendered page.
type PageInfo struct {
	EffectivePage int `json:"effectivePage"`
	TotalPages    int `json:"totalPages"`
}

// Paginate slices an ordered subset into the requested fixed-size page.
// The requested page is clamped into [1, totalPages], so out-of-range
// values are corrected rather than rejected. An empty subset yields an
// empty page with effectivePage == totalPages == 1.
func Paginate(ordered []*Job, pageSize, requestedPage int) ([]*Job, PageInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(ordered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := clampPage(requestedPage, totalPages)

	start := (page - 1) * pageSize
	if start >= len(ordered) {
		return []*Job{}, PageInfo{EffectivePage: page, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[start:end], PageInfo{EffectivePage: page, TotalPages: totalPages}
}

// PrevPage returns the page number one before current, clamped to the
// first page.
func (p PageInfo) PrevPage() int {
	return clampPage(p.EffectivePage-1, p.TotalPages)
}

// NextPage returns the page number one after current, clamped to the
// last page.
func (p PageInfo) NextPage() int {
	return clampPage(p.EffectivePage+1, p.TotalPages)
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
