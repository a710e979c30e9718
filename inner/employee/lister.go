package employee

import (
	"context"
	"fmt"

	"ems/inner/common"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Lister возвращает страницу списка сотрудников и общее число записей,
// прошедших фильтры. Реализации взаимозаменяемы и дают одинаковый результат:
// ProcedureLister выполняет всё в хранимой функции, QueryLister собирает
// запрос в приложении.
type Lister interface {
	List(ctx context.Context, query ListQuery) ([]ListRecord, int64, error)
}

const employeeTable = "employee"

var employeeColumns = []string{
	"id", "name", "email", "address", "dob", "phone_number", "profile_picture",
	"is_active", "is_deleted", "created_date", "updated_date",
}

// логическое имя колонки -> колонка таблицы, только они доступны для сортировки
var sortColumns = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Address":     "address",
	"PhoneNumber": "phone_number",
	"Dob":         "dob",
	"CreatedDate": "created_date",
}

// колонки, по которым работает фильтр из всплывающего окна
var filterColumns = map[string]string{
	"Name":        "name",
	"Email":       "email",
	"Address":     "address",
	"PhoneNumber": "phone_number",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewLister выбирает стратегию по значению LIST_STRATEGY
func NewLister(strategy string, db *sqlx.DB) (Lister, error) {
	switch strategy {
	case common.ListStrategyProcedure:
		return NewProcedureLister(db), nil
	case common.ListStrategyQuery:
		return NewQueryLister(db), nil
	default:
		return nil, fmt.Errorf("unknown list strategy: %q", strategy)
	}
}
