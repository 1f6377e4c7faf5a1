package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/routing-gateway/internal/domain"
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
	}
}

// WithDetails возвращает копию ошибки с деталями, общие переменные не меняются
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// FromDomain переводит ошибки ядра в AppError
func FromDomain(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	if stderrors.Is(err, domain.ErrMissingCredential) {
		return ErrMissingCredential
	}

	var transportErr *domain.TransportError
	if stderrors.As(err, &transportErr) {
		return ErrTransportFailure.WithDetails(map[string]interface{}{
			"reason": transportErr.Err.Error(),
		})
	}

	return ErrInternalServer
}
