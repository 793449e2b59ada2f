package dto

import "github.com/SscSPs/slt_feedback_app/internal/utils/pagination"

// PaginationMeta describes the page returned in a listing.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginationMeta(p pagination.Page, total int64) PaginationMeta {
	return PaginationMeta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages(total),
	}
}
