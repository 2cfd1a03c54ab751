// Package apperror defines the structured failure taxonomy shared by all
// services. Handlers return these for every ordinary failure path; only
// genuinely unexpected conditions travel as plain errors and surface as
// INTERNAL_SERVER_ERROR at the request boundary.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func Validation(message string) *AppError {
	return New(fiber.StatusBadRequest, "VALIDATION_ERROR", message)
}

func Unauthorized(message string) *AppError {
	return New(fiber.StatusUnauthorized, "UNAUTHORIZED", message)
}

func InvalidCredentials() *AppError {
	return New(fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password.")
}

func NotFound(message string) *AppError {
	return New(fiber.StatusNotFound, "NOT_FOUND", message)
}

func Forbidden(message string) *AppError {
	return New(fiber.StatusForbidden, "FORBIDDEN", message)
}

func EmailExists() *AppError {
	return New(fiber.StatusConflict, "EMAIL_EXISTS", "This email is already registered.")
}

func TooManyAttempts(message string) *AppError {
	return New(fiber.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", message)
}

func Internal(message string) *AppError {
	return New(fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// From extracts an *AppError from err, or wraps err as Internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}
