package employee

import "strings"

const (
	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"

	// размер страницы, если клиент не передал length
	DefaultPageLength = 10
)

// OrderInstruction одна инструкция сортировки грида: индекс колонки и направление
type OrderInstruction struct {
	Column int
	Dir    string
}

// DataTableColumn описание колонки грида
type DataTableColumn struct {
	Data string
	Name string
}

// DataTableRequest общие параметры пагинации и сортировки грида
type DataTableRequest struct {
	Draw        int
	Start       int
	Length      int
	SearchValue string
	Order       []OrderInstruction
	Columns     []DataTableColumn
}

// FilterParams фильтры, которые приходят отдельно от параметров грида
type FilterParams struct {
	Email        string
	Phone        string
	FilterColumn string
	FilterValue  string
}

// ListQuery нормализованный запрос списка сотрудников
type ListQuery struct {
	Start  int
	Length int
	Search string
	// логическое имя колонки: Name, Email, Address, PhoneNumber, Dob, CreatedDate
	SortColumn    string
	SortDirection string
	Email         string
	Phone         string
	FilterColumn  string
	FilterValue   string
}

// NewListQuery собирает ListQuery из параметров грида и фильтров.
// Учитывается только первая инструкция сортировки.
func NewListQuery(request DataTableRequest, filters FilterParams) ListQuery {
	query := ListQuery{
		Start:        request.Start,
		Length:       request.Length,
		Search:       request.SearchValue,
		Email:        strings.TrimSpace(filters.Email),
		Phone:        strings.TrimSpace(filters.Phone),
		FilterColumn: strings.TrimSpace(filters.FilterColumn),
		FilterValue:  filters.FilterValue,
	}
	if query.Start < 0 {
		query.Start = 0
	}

	if len(request.Order) > 0 {
		order := request.Order[0]
		if order.Column >= 0 && order.Column < len(request.Columns) {
			column := request.Columns[order.Column]
			name := column.Name
			if name == "" {
				name = column.Data
			}
			if name != "" {
				query.SortColumn = name
				query.SortDirection = DirectionAsc
				if strings.EqualFold(order.Dir, DirectionDesc) {
					query.SortDirection = DirectionDesc
				}
			}
		}
	}
	return query
}

// SortExpression колонка сортировки с суффиксом " DESC" при убывании,
// пустая строка если сортировка не задана
func (q ListQuery) SortExpression() string {
	if q.SortColumn == "" {
		return ""
	}
	if q.SortDirection == DirectionDesc {
		return q.SortColumn + " " + DirectionDesc
	}
	return q.SortColumn
}

// DataTableResponse формат ответа, который ожидает грид
type DataTableResponse struct {
	Draw            int       `json:"draw"`
	RecordsTotal    int64     `json:"recordsTotal"`
	RecordsFiltered int64     `json:"recordsFiltered"`
	Data            []ListRow `json:"data"`
}
