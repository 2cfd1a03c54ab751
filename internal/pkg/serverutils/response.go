package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"onemore-backend/internal/pkg/apperror"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type successEnvelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

type failureEnvelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Error     errorBody `json:"error"`
	Timestamp int64     `json:"timestamp"`
}

func Ok(ctx *fiber.Ctx, data interface{}) error {
	return OkStatus(ctx, fiber.StatusOK, data)
}

func OkStatus(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(successEnvelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

func Fail(ctx *fiber.Ctx, appErr *apperror.AppError) error {
	return ctx.Status(appErr.Status).JSON(failureEnvelope{
		Success:   false,
		Message:   appErr.Message,
		Error:     errorBody{Code: appErr.Code, Message: appErr.Message},
		Timestamp: time.Now().UnixMilli(),
	})
}
