package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func procedureRows(total int64, entities ...Entity) *sqlmock.Rows {
	rows := sqlmock.NewRows(append(append([]string{}, employeeColumns...), "total_records"))
	for _, e := range entities {
		rows.AddRow(e.Id, e.Name, e.Email, nullable(e.Address), nullable(e.Dob), nullable(e.PhoneNumber),
			nullable(e.ProfilePicture), nullable(e.IsActive), e.IsDeleted, e.CreatedDate, nullable(e.UpdatedDate), total)
	}
	return rows
}

func TestProcedureLister_PassesAllParameters(t *testing.T) {
	db, mock := newMockDb(t)
	lister := NewProcedureLister(db)
	query := ListQuery{
		Start:         10,
		Length:        5,
		Search:        "Jo",
		SortColumn:    "Name",
		SortDirection: DirectionAsc,
		Email:         "john@example.com",
		Phone:         "5551234",
		FilterColumn:  "Address",
		FilterValue:   "Elm",
	}

	mock.ExpectQuery(regexp.QuoteMeta(procedureListQuery)).
		WithArgs(10, 5, "Jo", "Name", DirectionAsc, "john@example.com", "5551234", "Address", "Elm").
		WillReturnRows(procedureRows(12,
			Entity{Id: 3, Name: "John", Email: "john@example.com", CreatedDate: createdDate},
		))

	records, total, err := lister.List(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, records, 1)
	assert.Equal(t, int64(12), records[0].TotalRecords)
	assert.Equal(t, "John", records[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcedureLister_EmptyFirstPage(t *testing.T) {
	db, mock := newMockDb(t)
	lister := NewProcedureLister(db)

	mock.ExpectQuery(regexp.QuoteMeta(procedureListQuery)).
		WillReturnRows(procedureRows(0))

	records, total, err := lister.List(context.Background(), ListQuery{Length: 10, Search: "nobody"})

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(0), total)
	// счётчик не вызывается, если первая страница пуста
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcedureLister_PageBeyondTotalCounts(t *testing.T) {
	db, mock := newMockDb(t)
	lister := NewProcedureLister(db)
	query := ListQuery{Start: 40, Length: 10, Search: "Jo", FilterColumn: "Name", FilterValue: "J"}

	mock.ExpectQuery(regexp.QuoteMeta(procedureListQuery)).
		WillReturnRows(procedureRows(0))
	mock.ExpectQuery(regexp.QuoteMeta(procedureCountQuery)).
		WithArgs("Jo", "", "", "Name", "J").
		WillReturnRows(sqlmock.NewRows([]string{"sp_count_employees"}).AddRow(int64(25)))

	records, total, err := lister.List(context.Background(), query)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(25), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcedureLister_Errors(t *testing.T) {
	t.Run("list fails", func(t *testing.T) {
		db, mock := newMockDb(t)
		mock.ExpectQuery(regexp.QuoteMeta(procedureListQuery)).
			WillReturnError(errors.New(`function sp_get_employees does not exist`))

		_, _, err := NewProcedureLister(db).List(context.Background(), ListQuery{Length: 10})

		assert.ErrorContains(t, err, "error calling sp_get_employees")
	})

	t.Run("count fails", func(t *testing.T) {
		db, mock := newMockDb(t)
		mock.ExpectQuery(regexp.QuoteMeta(procedureListQuery)).WillReturnRows(procedureRows(0))
		mock.ExpectQuery(regexp.QuoteMeta(procedureCountQuery)).WillReturnError(errors.New("timeout"))

		_, _, err := NewProcedureLister(db).List(context.Background(), ListQuery{Start: 10, Length: 10})

		assert.ErrorContains(t, err, "error calling sp_count_employees")
	})
}
