package handler

import (
	"net/http"
	"strconv"

	"diagnolab/pkg/response"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination reads page/limit query params and converts them to
// limit/offset for the repository layer
func parsePagination(r *http.Request) (page, limit, offset int) {
	page = 1
	limit = defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit, (page - 1) * limit
}

func buildMeta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
