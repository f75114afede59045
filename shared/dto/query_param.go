package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"suitespot/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams is the paging and ordering part of a list request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Non-positive or unparsable numbers are ignored. With withDefaults the page
// and limit fall back to the configured defaults, which every list endpoint wants.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	q.Page = positiveOr(values.Get(constant.RequestParamPage), q.Page)
	q.Limit = positiveOr(values.Get(constant.RequestParamLimit), q.Limit)

	if sortBy := values.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Sanitize keeps SortBy only when it names one of allowed, falling back to fallback.
// SortBy ends up in ORDER BY verbatim, so anything else must never reach the repository.
func (q *QueryParams) Sanitize(fallback string, allowed ...string) {
	if q.SortBy == "" || !slices.Contains(allowed, q.SortBy) {
		q.SortBy = fallback
	}

	if q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}

// Offset is the number of rows skipped before the current page.
func (q *QueryParams) Offset() int {
	if q.Page <= 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positiveOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
