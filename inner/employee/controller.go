package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ems/inner/common"
	"ems/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ограничение на число колонок и инструкций сортировки, которые разбираем из запроса
const maxGridParams = 64

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	ListEmployees(ctx context.Context, query ListQuery) (ListResult, error)
	GetEmployee(ctx context.Context, id int64) (*Response, error)
	SaveEmployee(ctx context.Context, request SaveRequest) (int64, error)
	DeleteEmployee(ctx context.Context, id int64) (bool, error)
	ToggleActive(ctx context.Context, id int64) (*bool, error)
	EmailExists(ctx context.Context, email string, excludeId int64) (bool, error)
	ExportEmployees(ctx context.Context, query ListQuery) (*bytes.Buffer, error)
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Get("/employees/list", c.ListEmployees)
	api.Post("/employees/list", c.ListEmployees)
	api.Get("/employees/export", c.ExportEmployees)
	api.Get("/employees/email-exists", c.EmailExists)
	api.Post("/employees", c.SaveEmployee)
	api.Get("/employees/:id", c.GetEmployee)
	api.Delete("/employees/:id", c.DeleteEmployee)
	api.Patch("/employees/:id/toggle-active", c.ToggleActive)
}

// ListEmployees отдаёт страницу в формате грида
func (c *Controller) ListEmployees(ctx *fiber.Ctx) error {
	request := parseDataTableRequest(ctx)
	query := NewListQuery(request, parseFilterParams(ctx))

	result, err := c.employeeService.ListEmployees(ctx.UserContext(), query)
	if err != nil {
		c.logger.ErrorCtx(ctx, "list employees failed", zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}

	return ctx.JSON(DataTableResponse{
		Draw:            request.Draw,
		RecordsTotal:    result.TotalFiltered,
		RecordsFiltered: result.TotalFiltered,
		Data:            result.Rows,
	})
}

func (c *Controller) ExportEmployees(ctx *fiber.Ctx) error {
	query := NewListQuery(parseDataTableRequest(ctx), parseFilterParams(ctx))

	buffer, err := c.employeeService.ExportEmployees(ctx.UserContext(), query)
	if err != nil {
		c.logger.ErrorCtx(ctx, "export employees failed", zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}

	fileName := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Send(buffer.Bytes())
}

func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	employee, err := c.employeeService.GetEmployee(ctx.UserContext(), id)
	if err != nil {
		c.logger.ErrorCtx(ctx, "get employee failed", zap.Int64("id", id), zap.Error(err))
		return common.ServiceErrResponse(ctx, err)
	}
	if employee == nil {
		return common.ErrResponse(ctx, fiber.StatusNotFound, "Employee not found")
	}

	return common.OkResponse(ctx, employee)
}

// SaveEmployee POST "/api/v1/employees": id = 0 создаёт, id > 0 обновляет
func (c *Controller) SaveEmployee(ctx *fiber.Ctx) error {
	var request SaveRequest
	if err := ctx.BodyParser(&request); err != nil {
		c.logger.WarnCtx(ctx, "failed to parse save employee body", zap.Error(err))
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	id, err := c.employeeService.SaveEmployee(ctx.UserContext(), request)
	if err != nil {
		var internalErr common.InternalError
		if errors.As(err, &internalErr) {
			c.logger.ErrorCtx(ctx, "save employee failed",
				zap.Int64("id", request.Id),
				zap.Error(err))
		} else {
			c.logger.WarnCtx(ctx, "save employee rejected",
				zap.Int64("id", request.Id),
				zap.Error(err))
		}
		return common.ServiceErrResponse(ctx, err)
	}

	return common.OkResponse(ctx, SaveResponse{Id: id})
}

func (c *Controller) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	deleted, err := c.employeeService.DeleteEmployee(ctx.UserContext(), id)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	if !deleted {
		return common.ErrResponse(ctx, fiber.StatusNotFound, "Employee not found")
	}

	return common.OkResponse(ctx, "Employee deleted successfully")
}

func (c *Controller) ToggleActive(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid employee ID")
	}

	active, err := c.employeeService.ToggleActive(ctx.UserContext(), id)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	if active == nil {
		return common.ErrResponse(ctx, fiber.StatusNotFound, "Employee not found")
	}

	return common.OkResponse(ctx, ToggleResponse{Id: id, IsActive: *active})
}

func (c *Controller) EmailExists(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Missing email parameter")
	}
	excludeId, err := strconv.ParseInt(ctx.Query("exclude_id", "0"), 10, 64)
	if err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid exclude_id parameter")
	}

	exists, err := c.employeeService.EmailExists(ctx.UserContext(), email, excludeId)
	if err != nil {
		return common.ServiceErrResponse(ctx, err)
	}
	return common.OkResponse(ctx, exists)
}

// parseDataTableRequest читает параметры грида из query string или тела формы
func parseDataTableRequest(ctx *fiber.Ctx) DataTableRequest {
	request := DataTableRequest{
		Draw:        formInt(ctx, "draw", 0),
		Start:       formInt(ctx, "start", 0),
		Length:      formInt(ctx, "length", DefaultPageLength),
		SearchValue: ctx.FormValue("search[value]"),
	}

	// колонка с data: null приходит с пустыми значениями, но ключи есть; индексы не сдвигаем
	for i := 0; i < maxGridParams; i++ {
		if !hasColumn(ctx, i) {
			break
		}
		request.Columns = append(request.Columns, DataTableColumn{
			Data: ctx.FormValue(fmt.Sprintf("columns[%d][data]", i)),
			Name: ctx.FormValue(fmt.Sprintf("columns[%d][name]", i)),
		})
	}

	for i := 0; i < maxGridParams; i++ {
		column := ctx.FormValue(fmt.Sprintf("order[%d][column]", i))
		if column == "" {
			break
		}
		index, err := strconv.Atoi(column)
		if err != nil {
			continue
		}
		request.Order = append(request.Order, OrderInstruction{
			Column: index,
			Dir:    ctx.FormValue(fmt.Sprintf("order[%d][dir]", i)),
		})
	}
	return request
}

func hasColumn(ctx *fiber.Ctx, index int) bool {
	for _, attr := range []string{"data", "name", "searchable", "orderable"} {
		if formHas(ctx, fmt.Sprintf("columns[%d][%s]", index, attr)) {
			return true
		}
	}
	return false
}

// formHas проверяет наличие ключа в query string или теле формы, даже с пустым значением
func formHas(ctx *fiber.Ctx, key string) bool {
	return ctx.Context().QueryArgs().Has(key) || ctx.Context().PostArgs().Has(key)
}

func parseFilterParams(ctx *fiber.Ctx) FilterParams {
	return FilterParams{
		Email:        ctx.FormValue("email"),
		Phone:        ctx.FormValue("phone"),
		FilterColumn: ctx.FormValue("searchColumn"),
		FilterValue:  ctx.FormValue("searchValue"),
	}
}

func formInt(ctx *fiber.Ctx, key string, fallback int) int {
	value := ctx.FormValue(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
