package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gridColumns() []DataTableColumn {
	return []DataTableColumn{
		{Data: "Id"},
		{Data: "name", Name: "Name"},
		{Data: "Email"},
		{Data: "", Name: ""},
	}
}

func TestNewListQuery(t *testing.T) {
	t.Run("first order instruction wins", func(t *testing.T) {
		query := NewListQuery(DataTableRequest{
			Start:       20,
			Length:      10,
			SearchValue: "Jo",
			Columns:     gridColumns(),
			Order:       []OrderInstruction{{Column: 1, Dir: "asc"}, {Column: 2, Dir: "desc"}},
		}, FilterParams{})

		assert.Equal(t, 20, query.Start)
		assert.Equal(t, 10, query.Length)
		assert.Equal(t, "Jo", query.Search)
		assert.Equal(t, "Name", query.SortColumn)
		assert.Equal(t, DirectionAsc, query.SortDirection)
		assert.Equal(t, "Name", query.SortExpression())
	})

	t.Run("column data used when name is empty", func(t *testing.T) {
		query := NewListQuery(DataTableRequest{
			Columns: gridColumns(),
			Order:   []OrderInstruction{{Column: 2, Dir: "DESC"}},
		}, FilterParams{})

		assert.Equal(t, "Email", query.SortColumn)
		assert.Equal(t, DirectionDesc, query.SortDirection)
		assert.Equal(t, "Email DESC", query.SortExpression())
	})

	t.Run("no sort", func(t *testing.T) {
		for _, order := range [][]OrderInstruction{
			nil,
			{{Column: 9, Dir: "asc"}},
			{{Column: -1, Dir: "asc"}},
			{{Column: 3, Dir: "asc"}},
		} {
			query := NewListQuery(DataTableRequest{Columns: gridColumns(), Order: order}, FilterParams{})
			assert.Empty(t, query.SortColumn)
			assert.Empty(t, query.SortExpression())
		}
	})

	t.Run("negative start clamped", func(t *testing.T) {
		query := NewListQuery(DataTableRequest{Start: -5, Length: 0}, FilterParams{})
		assert.Equal(t, 0, query.Start)
		assert.Equal(t, 0, query.Length)
	})

	t.Run("filters trimmed", func(t *testing.T) {
		query := NewListQuery(DataTableRequest{}, FilterParams{
			Email:        " john@example.com ",
			Phone:        " 555 ",
			FilterColumn: " Address ",
			FilterValue:  " Elm",
		})

		assert.Equal(t, "john@example.com", query.Email)
		assert.Equal(t, "555", query.Phone)
		assert.Equal(t, "Address", query.FilterColumn)
		// значение фильтра сравнивается как есть
		assert.Equal(t, " Elm", query.FilterValue)
	})
}
