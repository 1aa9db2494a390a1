package repository

const (
	DEFAULTPAGE  = 1
	DEFAULTLIMIT = 50
	MAXLIMIT     = 200
)

// Page selects a window of a listing. Zero values fall back to the defaults.
type Page struct {
	Number int
	Limit  int
}

// PageInfo describes the window that was returned.
type PageInfo struct {
	TotalCount  int64 `json:"total_count"`
	Count       int   `json:"count"`
	Page        int   `json:"page"`
	HasNextPage bool  `json:"has_next_page"`
}

func getPaginationInfo(page Page) (Page, int) {
	var offset int
	if page.Number <= 0 {
		page.Number = DEFAULTPAGE
	}
	if page.Limit <= 0 {
		page.Limit = DEFAULTLIMIT
	}
	if page.Limit > MAXLIMIT {
		page.Limit = MAXLIMIT
	}
	if page.Number > 1 {
		offset = page.Limit * (page.Number - 1)
	}
	return page, offset
}

func getPagingInfo(page Page, total int64, count int) PageInfo {
	return PageInfo{
		TotalCount:  total,
		Count:       count,
		Page:        page.Number,
		HasNextPage: int64(page.Number*page.Limit) < total,
	}
}
