package shared

import (
	"carrental/shared/dto"
	"fmt"
	"math"
	"strings"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a key prefix such as "reservation:get" with its identifying parts.
func BuildCacheKey(prefix string, parts ...any) string {
	if len(parts) == 0 {
		return prefix
	}

	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, fmt.Sprint(part))
	}

	return prefix + ":" + strings.Join(values, ":")
}
