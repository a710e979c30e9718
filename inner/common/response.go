package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Data    T      `json:"data,omitempty"`
} // @name Response

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	data ...any,
) error {
	response := Response[any]{
		Success: false,
		Message: message,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return c.Status(code).JSON(response)
}

func OkResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.JSON(&Response[T]{
		Success: true,
		Data:    data,
	})
}

// ServiceErrResponse переводит ошибку сервисного слоя в код ответа
func ServiceErrResponse(ctx *fiber.Ctx, err error) error {
	var validationErr RequestValidationError
	var existsErr AlreadyExistsError
	var notFoundErr NotFoundError
	switch {
	case errors.As(err, &validationErr):
		return ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Message, validationErr.Data)
	case errors.As(err, &existsErr):
		return ErrResponse(ctx, fiber.StatusBadRequest, existsErr.Message)
	case errors.As(err, &notFoundErr):
		return ErrResponse(ctx, fiber.StatusNotFound, notFoundErr.Message)
	default:
		// текст внутренних ошибок наружу не отдаём
		return ErrResponse(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}
