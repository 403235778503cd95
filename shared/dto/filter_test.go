package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buslink/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArg   any
	}{
		{
			name:      "equality",
			filter:    dto.Filter{Field: "username", Value: "sarah", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.username = :username",
			wantArg:   "sarah",
		},
		{
			name:      "case-insensitive equality",
			filter:    dto.Filter{Field: "source", Value: "dublin", Operator: dto.FilterOperatorIEq, Table: "routes"},
			wantWhere: "LOWER(routes.source) = LOWER(:source)",
			wantArg:   "dublin",
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Value: "CANCELLED", Operator: dto.FilterOperatorNotEq},
			wantWhere: "status != :status",
			wantArg:   "CANCELLED",
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "min_price", Field: "price", Value: 10.0, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "price >= :min_price",
			wantArg:   10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)

			argName := tt.filter.ArgName
			if argName == "" {
				argName = tt.filter.Field
			}

			assert.Equal(t, tt.wantArg, args[argName])
		})
	}
}

func TestFilter_GetWhereClauseLike(t *testing.T) {
	filter := dto.Filter{Field: "name", Value: "city", Operator: dto.FilterOperatorLike}

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "LOWER(name) LIKE LOWER(:name)")
	assert.Equal(t, "%city%", args["name"])
}

func TestFilter_GetWhereClauseIn(t *testing.T) {
	filter := dto.Filter{Field: "status", Value: []string{"CONFIRMED", "PENDING"}, Operator: dto.FilterOperatorIn}

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "status IN (:status_0, :status_1)")
	assert.Equal(t, "CONFIRMED", args["status_0"])
	assert.Equal(t, "PENDING", args["status_1"])
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields no clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("operator defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "source", Value: "Dublin", Operator: dto.FilterOperatorIEq},
			},
		}

		where, args := group.GetWhereClause()

		assert.Contains(t, where, " AND ")
		assert.Len(t, args, 2)
	})

	t.Run("nested groups compose", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "status", Value: "CONFIRMED", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Filters: []any{
						dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, _ := group.GetWhereClause()

		assert.Contains(t, where, " OR ")
		assert.Contains(t, where, "(active = :active)")
	})
}
