package employee

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// строка для полнотекстового поиска, дата рождения в неё не входит
const searchExpression = "strpos(CONCAT(name, ' ', email, ' ', address, ' ', phone_number), ?) > 0"

// QueryLister собирает запрос списка в приложении через squirrel.
// Сначала считает отфильтрованные записи, потом выбирает страницу.
type QueryLister struct {
	db *sqlx.DB
}

func NewQueryLister(db *sqlx.DB) *QueryLister {
	return &QueryLister{db: db}
}

func (l *QueryLister) List(ctx context.Context, query ListQuery) ([]ListRecord, int64, error) {
	countSql, countArgs, err := applyListFilters(psql.Select("COUNT(*)").From(employeeTable), query).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building employee count query: %w", err)
	}

	var total int64
	if err = l.db.GetContext(ctx, &total, countSql, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("error counting employees: %w", err)
	}
	if total == 0 || int64(query.Start) >= total {
		return []ListRecord{}, total, nil
	}

	builder := applyListFilters(psql.Select(employeeColumns...).From(employeeTable), query).
		OrderBy(orderByClauses(query)...)
	if query.Start > 0 {
		builder = builder.Offset(uint64(query.Start))
	}
	if query.Length > 0 {
		builder = builder.Limit(uint64(query.Length))
	}
	pageSql, pageArgs, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building employee page query: %w", err)
	}

	var entities []Entity
	if err = l.db.SelectContext(ctx, &entities, pageSql, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("error selecting employee page: %w", err)
	}

	records := make([]ListRecord, len(entities))
	for i, entity := range entities {
		records[i] = ListRecord{Entity: entity, TotalRecords: total}
	}
	return records, total, nil
}

func applyListFilters(builder sq.SelectBuilder, query ListQuery) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"is_deleted": false})
	if query.Search != "" {
		builder = builder.Where(sq.Expr(searchExpression, query.Search))
	}
	if query.Email != "" {
		builder = builder.Where(sq.Eq{"email": query.Email})
	}
	if query.Phone != "" {
		builder = builder.Where(sq.Eq{"phone_number": query.Phone})
	}
	if column, ok := filterColumns[query.FilterColumn]; ok && query.FilterValue != "" {
		builder = builder.Where(sq.Expr("strpos("+column+", ?) > 0", query.FilterValue))
	}
	return builder
}

// orderByClauses направление инвертировано: ASC сортирует по убыванию,
// любое другое значение по возрастанию. Так ведёт себя существующий клиент.
func orderByClauses(query ListQuery) []string {
	column, ok := sortColumns[query.SortColumn]
	if !ok {
		return []string{"id DESC"}
	}
	direction := DirectionAsc
	if query.SortDirection == DirectionAsc {
		direction = DirectionDesc
	}
	return []string{column + " " + direction, "id DESC"}
}
