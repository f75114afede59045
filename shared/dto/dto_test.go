package dto_test

import (
	"net/http"
	"net/url"
	"reflect"
	"suitespot/shared/constant"
	"suitespot/shared/dto"
	"suitespot/shared/model"
	"suitespot/shared/timezone"
	"testing"
	"time"
)

func TestMetadataOf(t *testing.T) {
	// Create test time values
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.NewMetadata("creator", createdAt)
	modelMetadata.Touch("modifier", modifiedAt)

	metadata := dto.MetadataOf(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Table: "bookings", Value: "r-1", Operator: dto.FilterOperatorEq},
			dto.Filter{ArgName: "check_out", Field: "check_in_date", Value: "2024-03-12", Operator: dto.FilterOperatorLess},
			dto.Filter{ArgName: "check_in", Field: "check_out_date", Value: "2024-03-10", Operator: dto.FilterOperatorGreater},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(bookings.room_id = :room_id AND check_in_date < :check_out AND check_out_date > :check_in AND (status IN (:status_0, :status_1)))"
	if where != expected {
		t.Errorf("expected where clause %q, got %q", expected, where)
	}

	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d", len(args))
	}

	if args["status_1"] != "confirmed" || args["check_out"] != "2024-03-12" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()
	if where != "" || len(args) != 0 {
		t.Errorf("expected empty clause, got %q %v", where, args)
	}
}

func TestQueryParams_Sanitize(t *testing.T) {
	params := dto.QueryParams{SortBy: "number; DROP TABLE rooms"}
	params.Sanitize("created_at", "number", "floor")

	if params.SortBy != "created_at" || params.SortDir != dto.SortDirDesc {
		t.Errorf("Sanitize() = %s %s, want created_at DESC", params.SortBy, params.SortDir)
	}

	params = dto.QueryParams{SortBy: "floor", SortDir: dto.SortDirAsc}
	params.Sanitize("created_at", "number", "floor")

	if params.SortBy != "floor" || params.SortDir != dto.SortDirAsc {
		t.Errorf("Sanitize() = %s %s, want floor ASC", params.SortBy, params.SortDir)
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		args     map[string]any
	}{
		{
			name:     "like wraps the value",
			filter:   dto.Filter{Field: "last_name", ArgName: "name", Value: "doe", Operator: dto.FilterOperatorLike},
			expected: "LOWER(last_name) LIKE LOWER(:name)",
			args:     map[string]any{"name": "%doe%"},
		},
		{
			name:     "empty in matches nothing",
			filter:   dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			expected: "FALSE",
			args:     map[string]any{},
		},
		{
			name:     "not equal",
			filter:   dto.Filter{Field: "status", Table: "bookings", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
			expected: "bookings.status != :status",
			args:     map[string]any{"status": "cancelled"},
		},
		{
			name:     "is null binds nothing",
			filter:   dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
			expected: "deleted_at IS NULL",
			args:     map[string]any{},
		},
		{
			name:     "unknown operator",
			filter:   dto.Filter{Field: "status", Value: "x", Operator: "between"},
			expected: "",
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expected {
				t.Errorf("expected where clause %q, got %q", tt.expected, where)
			}

			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("expected args %v, got %v", tt.args, args)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	for _, tt := range []struct {
		page, limit, want int
	}{
		{page: 0, limit: 10, want: 0},
		{page: 1, limit: 10, want: 0},
		{page: 3, limit: 25, want: 50},
	} {
		params := dto.QueryParams{Page: tt.page, Limit: tt.limit}

		if got := params.Offset(); got != tt.want {
			t.Errorf("Offset() page=%d limit=%d = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}
