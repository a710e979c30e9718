package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ems/inner/common"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

// FindById возвращает nil, если записи нет или она удалена
func (r *Repository) FindById(ctx context.Context, id int64) (*Entity, error) {
	query, args, err := psql.Select(employeeColumns...).
		From(employeeTable).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building find employee query: %w", err)
	}

	var employee Entity
	err = r.db.GetContext(ctx, &employee, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Save создаёт сотрудника при Id = 0, иначе перезаписывает изменяемые поля
// неудалённой записи. Возвращает 0, если обновлять нечего.
// Уникальность email здесь не проверяется.
func (r *Repository) Save(ctx context.Context, employee *Entity) (int64, error) {
	if employee.Id == 0 {
		return r.insert(ctx, employee)
	}
	return r.update(ctx, employee)
}

func (r *Repository) insert(ctx context.Context, employee *Entity) (int64, error) {
	query, args, err := psql.Insert(employeeTable).
		Columns("name", "email", "address", "dob", "phone_number", "profile_picture", "is_active", "is_deleted", "created_date").
		Values(employee.Name, employee.Email, employee.Address, employee.Dob, employee.PhoneNumber,
			employee.ProfilePicture, employee.IsActive, false, sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building insert employee query: %w", err)
	}

	var id int64
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapUniqueViolation(err, employee.Email)
	}
	employee.Id = id
	return id, nil
}

func (r *Repository) update(ctx context.Context, employee *Entity) (int64, error) {
	query, args, err := psql.Update(employeeTable).
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("address", employee.Address).
		Set("dob", employee.Dob).
		Set("phone_number", employee.PhoneNumber).
		Set("profile_picture", employee.ProfilePicture).
		Set("is_active", employee.IsActive).
		Set("updated_date", sq.Expr("NOW()")).
		Where(sq.Eq{"id": employee.Id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building update employee query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapUniqueViolation(err, employee.Email)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, nil
	}
	return employee.Id, nil
}

// SoftDelete помечает запись удалённой, false если такой неудалённой записи нет
func (r *Repository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	query, args, err := psql.Update(employeeTable).
		Set("is_deleted", true).
		Set("updated_date", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building delete employee query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ToggleActive возвращает новое значение флага или nil, если записи нет
func (r *Repository) ToggleActive(ctx context.Context, id int64) (*bool, error) {
	query, args, err := psql.Update(employeeTable).
		Set("is_active", sq.Expr("NOT COALESCE(is_active, FALSE)")).
		Set("updated_date", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		Suffix("RETURNING is_active").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building toggle employee query: %w", err)
	}

	var active bool
	err = r.db.QueryRowxContext(ctx, query, args...).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &active, nil
}

// EmailExists ищет email без учёта регистра среди неудалённых записей, кроме excludeId
func (r *Repository) EmailExists(ctx context.Context, email string, excludeId int64) (bool, error) {
	query, args, err := psql.Select("1").
		From(employeeTable).
		Where("lower(email) = lower(?)", email).
		Where(sq.Eq{"is_deleted": false}).
		Where(sq.NotEq{"id": excludeId}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building email exists query: %w", err)
	}

	var exists bool
	if err = r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, err
	}
	return exists, nil
}

// mapUniqueViolation нарушение уникального индекса по email -> AlreadyExistsError
func mapUniqueViolation(err error, email string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
		return common.AlreadyExistsError{Message: fmt.Sprintf("employee with email %s already exists", email)}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return common.AlreadyExistsError{Message: fmt.Sprintf("employee with email %s already exists", email)}
	}
	return err
}
