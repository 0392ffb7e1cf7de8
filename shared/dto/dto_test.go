package dto_test

import (
	"carrental/shared/constant"
	"carrental/shared/dto"
	"carrental/shared/model"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "fleet-admin",
		ModifiedBy: "fleet-admin",
	})

	assert.Equal(t, createdAt.Format(constant.DateTimeFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateTimeFormat), metadata.ModifiedAt)
	assert.Equal(t, "fleet-admin", metadata.CreatedBy)
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
				"sort_by":  "start_date",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_date", SortDir: "ASC"},
		},
		{
			name:           "defaults when nothing is given",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults when disabled",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid page and limit fall back",
			queryParams:    map[string]string{"page": "zero", "limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "unknown sort direction is ignored",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/reservations?"+query.Encode(), nil)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_Sanitize(t *testing.T) {
	q := dto.QueryParams{SortBy: "start_date; DROP TABLE cars"}
	q.Sanitize("created_at", "start_date", "end_date")

	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, q.SortDir)

	q = dto.QueryParams{SortBy: "end_date", SortDir: dto.SortDirAsc}
	q.Sanitize("created_at", "start_date", "end_date")

	assert.Equal(t, "end_date", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "car_id", Value: int64(7), Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{Field: "status", Value: []string{"pending", "active"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.car_id = :car_id AND status IN (:status_0, :status_1) )", where)
	assert.Equal(t, map[string]any{"car_id": int64(7), "status_0": "pending", "status_1": "active"}, args)
}
