package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, исходная (sentinel) не меняется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is сравнивает AppError по коду, чтобы копии из WithDetails совпадали с sentinel
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ValidationError - некорректный FilterRequest. Field называет конкретное поле.
// Param - ошибка в параметре запроса вне фильтра (например, идентификатор в пути).
type ValidationError struct {
	Field   string
	Message string
	Param   bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError создаёт ValidationError для поля
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewParamError создаёт ValidationError для параметра запроса вне фильтра
func NewParamError(field, format string, args ...any) *ValidationError {
	ve := NewValidationError(field, format, args...)
	ve.Param = true
	return ve
}

// ExecutionError - ошибка выполнения запроса в хранилище.
// Query содержит только текст с плейсхолдерами. Текст ошибки драйвера может
// цитировать значения параметров, поэтому Error() его не выводит: Err доступна
// только через Unwrap.
type ExecutionError struct {
	Operation  string
	Query      string
	ParamCount int
	Err        error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("warehouse %s failed (%s)", e.Operation, ErrorKind(e.Err))
}

// ErrorKind - вид ошибки без её текста: timeout, canceled или тип ошибки драйвера
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case stderrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case stderrors.Is(err, context.Canceled):
		return "canceled"
	}

	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}

	switch kind := fmt.Sprintf("%T", err); kind {
	case "*errors.errorString", "*fmt.wrapError":
		return "driver"
	default:
		return kind
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsValidation проверяет, является ли ошибка ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// IsExecution проверяет, является ли ошибка ExecutionError
func IsExecution(err error) bool {
	var ee *ExecutionError
	return stderrors.As(err, &ee)
}

// ToAppError переводит ошибку любого вида в AppError для ответа клиенту
func ToAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var ve *ValidationError
	if stderrors.As(err, &ve) {
		base := ErrValidation
		if ve.Param {
			base = ErrInvalidRequest
		}
		return base.WithDetails(map[string]interface{}{
			"field":  ve.Field,
			"reason": ve.Message,
		})
	}

	var ee *ExecutionError
	if stderrors.As(err, &ee) {
		return ErrWarehouse.WithDetails(map[string]interface{}{
			"operation": ee.Operation,
			"retryable": true,
		})
	}

	return ErrInternalServer
}

// StatusCode возвращает HTTP статус для ошибки
func StatusCode(err error) int {
	if appErr := ToAppError(err); appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
