package employee

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	procedureListQuery  = `SELECT * FROM sp_get_employees($1::int, $2::int, $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text)`
	procedureCountQuery = `SELECT sp_count_employees($1::text, $2::text, $3::text, $4::text, $5::text)`
)

// ProcedureLister фильтрует, сортирует и режет на страницы в функции sp_get_employees.
// Общее число записей приходит в колонке total_records каждой строки.
type ProcedureLister struct {
	db *sqlx.DB
}

func NewProcedureLister(db *sqlx.DB) *ProcedureLister {
	return &ProcedureLister{db: db}
}

func (l *ProcedureLister) List(ctx context.Context, query ListQuery) ([]ListRecord, int64, error) {
	records := []ListRecord{}
	err := l.db.SelectContext(ctx, &records, procedureListQuery,
		query.Start, query.Length, query.Search,
		query.SortColumn, query.SortDirection,
		query.Email, query.Phone,
		query.FilterColumn, query.FilterValue,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error calling sp_get_employees: %w", err)
	}
	if len(records) > 0 {
		return records, records[0].TotalRecords, nil
	}
	if query.Start == 0 {
		return records, 0, nil
	}

	// страница за пределами выборки: строк нет, но общее число нужно
	var total int64
	err = l.db.GetContext(ctx, &total, procedureCountQuery,
		query.Search, query.Email, query.Phone, query.FilterColumn, query.FilterValue)
	if err != nil {
		return nil, 0, fmt.Errorf("error calling sp_count_employees: %w", err)
	}
	return records, total, nil
}
