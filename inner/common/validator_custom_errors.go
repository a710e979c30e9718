package common

type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

type AlreadyExistsError struct {
	Message string `json:"message"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// InternalError скрывает от клиента причину сбоя хранилища.
// Причина доступна через errors.Unwrap для логов и тестов.
type InternalError struct {
	Message string
	Err     error
}

func (err InternalError) Error() string {
	return err.Message
}

func (err InternalError) Unwrap() error {
	return err.Err
}

// NewInternalError создаёт ошибку с общим сообщением
func NewInternalError(cause error) error {
	return InternalError{Message: "internal server error", Err: cause}
}
