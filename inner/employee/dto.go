package employee

import (
	"strings"
	"time"
)

const (
	// формат дат для отображения, например "07 Jun, 2023"
	DisplayDateLayout = "02 Jan, 2006"
	// формат даты рождения во входящих запросах
	InputDateLayout = "2006-01-02"
	// пустая дата отображается строкой "N/A", клиент на это опирается
	NotAvailable = "N/A"
)

type Entity struct {
	Id             int64      `db:"id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	Address        *string    `db:"address"`
	Dob            *time.Time `db:"dob"`
	PhoneNumber    *string    `db:"phone_number"`
	ProfilePicture *string    `db:"profile_picture"`
	IsActive       *bool      `db:"is_active"`
	IsDeleted      bool       `db:"is_deleted"`
	CreatedDate    time.Time  `db:"created_date"`
	UpdatedDate    *time.Time `db:"updated_date"`
}

// ListRecord строка выборки списка вместе с общим числом отфильтрованных записей
type ListRecord struct {
	Entity
	TotalRecords int64 `db:"total_records"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:             e.Id,
		Name:           e.Name,
		Email:          e.Email,
		Address:        valueOrEmpty(e.Address),
		Dob:            formatDate(e.Dob),
		PhoneNumber:    valueOrEmpty(e.PhoneNumber),
		ProfilePicture: valueOrEmpty(e.ProfilePicture),
		IsActive:       isActive(e.IsActive),
		CreatedDate:    formatDate(&e.CreatedDate),
	}
}

// toListRow total берётся из результата подсчёта, а не из строки,
// чтобы у всех строк страницы было одно и то же значение
func (r *ListRecord) toListRow(total int64) ListRow {
	return ListRow{
		Id:             r.Id,
		Name:           r.Name,
		Email:          r.Email,
		Address:        valueOrEmpty(r.Address),
		Dob:            formatDate(r.Dob),
		PhoneNumber:    valueOrEmpty(r.PhoneNumber),
		ProfilePicture: valueOrEmpty(r.ProfilePicture),
		CreatedDate:    formatDate(&r.CreatedDate),
		IsActive:       isActive(r.IsActive),
		TotalRecords:   total,
	}
}

type Response struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Dob            string `json:"dob"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
	IsActive       bool   `json:"is_active"`
	CreatedDate    string `json:"created_date"`
}

type ListRow struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Dob            string `json:"dob"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
	CreatedDate    string `json:"created_date"`
	IsActive       bool   `json:"is_active"`
	TotalRecords   int64  `json:"total_records"`
}

// ListResult страница списка и число записей, удовлетворяющих фильтрам
type ListResult struct {
	Rows          []ListRow
	TotalFiltered int64
}

// SaveRequest запрос на создание (Id = 0) или изменение сотрудника
type SaveRequest struct {
	Id             int64  `json:"id" validate:"gte=0"`
	Name           string `json:"name" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email,max=50"`
	Address        string `json:"address" validate:"max=250"`
	Dob            string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,max=15,phone"`
	ProfilePicture string `json:"profile_picture"`
	// по умолчанию сотрудник активен
	IsActive *bool `json:"is_active"`
}

// Normalize обрезает пробелы по краям, чтобы required не пропускал строку из одних пробелов
func (req *SaveRequest) Normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Address = strings.TrimSpace(req.Address)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.ProfilePicture = strings.TrimSpace(req.ProfilePicture)
}

// ToEntity ожидает уже провалидированный запрос
func (req *SaveRequest) ToEntity() Entity {
	var active = true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	var dob *time.Time
	if req.Dob != "" {
		if parsed, err := time.Parse(InputDateLayout, req.Dob); err == nil {
			dob = &parsed
		}
	}
	return Entity{
		Id:             req.Id,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Address:        emptyToNil(req.Address),
		Dob:            dob,
		PhoneNumber:    emptyToNil(req.PhoneNumber),
		ProfilePicture: emptyToNil(req.ProfilePicture),
		IsActive:       &active,
	}
}

type SaveResponse struct {
	Id int64 `json:"id"`
}

type ToggleResponse struct {
	Id       int64 `json:"id"`
	IsActive bool  `json:"is_active"`
}

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return NotAvailable
	}
	return value.Format(DisplayDateLayout)
}

func isActive(value *bool) bool {
	return value != nil && *value
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func emptyToNil(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
