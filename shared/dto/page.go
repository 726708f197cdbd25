package dto

import (
	"net/http"
	"serenity/shared"
	"serenity/shared/constant"
	"serenity/shared/failure"
	"strconv"
)

// Pager is the offset-based pagination window shown under admin lists.
type Pager struct {
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	Total       int  `json:"total"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// NewPager derives page numbers from an offset window. A non-positive limit
// means the list is not paginated.
func NewPager(offset, limit, total int) Pager {
	p := Pager{Limit: limit, Offset: offset, Total: total, CurrentPage: 1}
	p.TotalPages = shared.CalculateTotalPage(total, limit)

	if limit > 0 {
		p.CurrentPage = offset/limit + 1
		p.HasPrev = offset > 0
		p.HasNext = offset+limit < total
	}

	return p
}

// PageParams carries the offset window requested by a client.
type PageParams struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FromRequest reads offset and limit from the query string, defaulting limit to 20.
func (p *PageParams) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	p.Limit = constant.DefaultValueLimit
	if limit := query.Get(constant.RequestParamLimit); limit != constant.Empty {
		value, ok := shared.ConvertStringToInt(limit)
		if !ok || value <= 0 {
			return failure.InvalidLimitParam
		}
		p.Limit = value
	}

	if offset := query.Get(constant.RequestParamOffset); offset != constant.Empty {
		value, err := strconv.Atoi(offset)
		if err != nil || value < 0 {
			return failure.InvalidOffsetParam
		}
		p.Offset = value
	}

	return nil
}

// NextOffset is the offset of the following page, or the current one on the last page.
func (p Pager) NextOffset() int {
	if !p.HasNext {
		return p.Offset
	}

	return p.Offset + p.Limit
}

// PrevOffset is the offset of the preceding page, never below zero.
func (p Pager) PrevOffset() int {
	return max(p.Offset-p.Limit, 0)
}
