package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"ems/inner/common"
	"ems/inner/validator"

	"go.uber.org/zap"
)

// предел строк в выгрузке
const MaxExportRows = 10000

type Service struct {
	repo      Repo
	lister    Lister
	validator Validator
	logger    *common.Logger
}

type Repo interface {
	FindById(ctx context.Context, id int64) (*Entity, error)
	Save(ctx context.Context, employee *Entity) (int64, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
	ToggleActive(ctx context.Context, id int64) (*bool, error)
	EmailExists(ctx context.Context, email string, excludeId int64) (bool, error)
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, lister Lister, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		lister:    lister,
		validator: validator,
		logger:    logger,
	}
}

// ListEmployees возвращает страницу списка; число записей одинаково на каждой строке
func (svc *Service) ListEmployees(ctx context.Context, query ListQuery) (ListResult, error) {
	svc.logger.Debug("Listing employees",
		zap.Int("start", query.Start),
		zap.Int("length", query.Length),
		zap.String("search", query.Search),
		zap.String("sort", query.SortExpression()),
		zap.String("filterColumn", query.FilterColumn))

	records, total, err := svc.lister.List(ctx, query)
	if ctxErr := ctx.Err(); ctxErr != nil {
		svc.logger.Warn("Employee list request cancelled", zap.Error(ctxErr))
		return ListResult{}, fmt.Errorf("employee list cancelled: %w", ctxErr)
	}
	if err != nil {
		svc.logger.Error("Failed to list employees", zap.Error(err))
		return ListResult{}, common.NewInternalError(fmt.Errorf("error listing employees: %w", err))
	}

	rows := make([]ListRow, len(records))
	for i := range records {
		rows[i] = records[i].toListRow(total)
	}

	svc.logger.Debug("Employees listed",
		zap.Int("rows", len(rows)),
		zap.Int64("totalFiltered", total))
	return ListResult{Rows: rows, TotalFiltered: total}, nil
}

// GetEmployee возвращает nil без ошибки, если сотрудник не найден или удалён
func (svc *Service) GetEmployee(ctx context.Context, id int64) (*Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.Int64("id", id))

	entity, err := svc.repo.FindById(ctx, id)
	if err != nil {
		svc.logger.Error("Failed to find employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, common.NewInternalError(fmt.Errorf("error finding employee with id %d: %w", id, err))
	}
	if entity == nil {
		svc.logger.Debug("Employee not found", zap.Int64("id", id))
		return nil, nil
	}

	response := entity.toResponse()
	return &response, nil
}

// SaveEmployee создаёт (Id = 0) или обновляет сотрудника и возвращает его id
func (svc *Service) SaveEmployee(ctx context.Context, request SaveRequest) (int64, error) {
	request.Normalize()
	svc.logger.Info("Saving employee",
		zap.Int64("id", request.Id),
		zap.String("email", request.Email))

	if err := svc.validateSaveRequest(request); err != nil {
		return 0, err
	}

	entity := request.ToEntity()
	exists, err := svc.repo.EmailExists(ctx, entity.Email, entity.Id)
	if err != nil {
		svc.logger.Error("Failed to check employee email",
			zap.String("email", entity.Email),
			zap.Error(err))
		return 0, common.NewInternalError(fmt.Errorf("error checking email %s: %w", entity.Email, err))
	}
	if exists {
		svc.logger.Warn("Employee with this email already exists",
			zap.String("email", entity.Email))
		return 0, common.AlreadyExistsError{Message: fmt.Sprintf("employee with email %s already exists", entity.Email)}
	}

	id, err := svc.repo.Save(ctx, &entity)
	if err != nil {
		var existsErr common.AlreadyExistsError
		if errors.As(err, &existsErr) {
			svc.logger.Warn("Employee email taken concurrently", zap.String("email", entity.Email))
			return 0, existsErr
		}
		svc.logger.Error("Failed to save employee",
			zap.Int64("id", entity.Id),
			zap.Error(err))
		return 0, common.NewInternalError(fmt.Errorf("error saving employee: %w", err))
	}
	if id == 0 {
		svc.logger.Warn("Employee to update not found", zap.Int64("id", entity.Id))
		return 0, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", entity.Id))
	}

	svc.logger.Info("Employee saved successfully", zap.Int64("id", id))
	return id, nil
}

// валидация запроса на сохранение сотрудника
func (svc *Service) validateSaveRequest(request SaveRequest) error {
	err := svc.validator.Validate(request)
	if err == nil {
		return nil
	}
	svc.logger.Warn("Employee save request validation failed",
		zap.String("name", request.Name),
		zap.Error(err))

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return common.RequestValidationError{
			Message: "Data validation error",
			Data:    validationErr.Errors,
		}
	}
	return common.RequestValidationError{Message: err.Error()}
}

// DeleteEmployee мягкое удаление, false если удалять нечего
func (svc *Service) DeleteEmployee(ctx context.Context, id int64) (bool, error) {
	svc.logger.Info("Deleting employee by ID", zap.Int64("id", id))

	deleted, err := svc.repo.SoftDelete(ctx, id)
	if err != nil {
		svc.logger.Error("Failed to delete employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return false, common.NewInternalError(fmt.Errorf("error deleting employee with id %d: %w", id, err))
	}

	svc.logger.Info("Employee delete processed",
		zap.Int64("id", id),
		zap.Bool("deleted", deleted))
	return deleted, nil
}

// ToggleActive возвращает новое состояние флага или nil, если сотрудник не найден
func (svc *Service) ToggleActive(ctx context.Context, id int64) (*bool, error) {
	svc.logger.Info("Toggling employee active flag", zap.Int64("id", id))

	active, err := svc.repo.ToggleActive(ctx, id)
	if err != nil {
		svc.logger.Error("Failed to toggle employee active flag",
			zap.Int64("id", id),
			zap.Error(err))
		return nil, common.NewInternalError(fmt.Errorf("error toggling employee with id %d: %w", id, err))
	}
	return active, nil
}

func (svc *Service) EmailExists(ctx context.Context, email string, excludeId int64) (bool, error) {
	exists, err := svc.repo.EmailExists(ctx, email, excludeId)
	if err != nil {
		svc.logger.Error("Failed to check employee email",
			zap.String("email", email),
			zap.Error(err))
		return false, common.NewInternalError(fmt.Errorf("error checking email %s: %w", email, err))
	}
	return exists, nil
}

// ExportEmployees выгружает отфильтрованный список без пагинации в XLSX
func (svc *Service) ExportEmployees(ctx context.Context, query ListQuery) (*bytes.Buffer, error) {
	query.Start = 0
	query.Length = MaxExportRows

	result, err := svc.ListEmployees(ctx, query)
	if err != nil {
		return nil, err
	}

	buffer, err := writeEmployeesXlsx(result.Rows)
	if err != nil {
		svc.logger.Error("Failed to build employee export", zap.Error(err))
		return nil, common.NewInternalError(fmt.Errorf("error building employee export: %w", err))
	}
	svc.logger.Info("Employees exported", zap.Int("rows", len(result.Rows)))
	return buffer, nil
}
