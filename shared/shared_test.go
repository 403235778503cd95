package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"buslink/shared"
	"buslink/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"zero total", 0, 10, 1},
		{"exact pages", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"zero limit", 25, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	truthy := shared.ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name  string  `db:"name"`
		Price float64 `db:"price"`
		Seats int     `db:"seats"`
	}

	fields := shared.TransformFields(update{Name: "CityLink Express", Price: 25.50}, "admin")

	assert.Equal(t, "CityLink Express", fields["name"])
	assert.Equal(t, 25.50, fields["price"])
	assert.NotContains(t, fields, "seats")
	assert.Equal(t, "admin", fields["modified_by"])
	assert.IsType(t, time.Time{}, fields["modified_at"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "routes:abc", shared.BuildCacheKey("routes", "abc"))
	assert.Equal(t, "routes", shared.BuildCacheKey("routes"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "username", Value: "sarah", Operator: dto.FilterOperatorEq},
		},
	}

	keyA := shared.BuildCacheKeyWithQuery("bookings", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("bookings", dto.QueryParams{Page: 3, Limit: 10}, filter)

	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "bookings:")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "routes")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(routes.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}
