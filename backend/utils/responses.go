package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vedaverse/backend/progress"
)

// SuccessResponse wraps every successful API payload.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is the body of every failed request. Error carries the HTTP
// status text, Message the reason shown to the learner.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Success writes data with the given status.
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{Success: true, Data: data})
}

// SuccessWithMeta writes data together with listing metadata such as totals.
func SuccessWithMeta(c *fiber.Ctx, data, meta interface{}) error {
	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true, Data: data, Meta: meta})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	})
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// rejections are the store errors caused by the request itself.
var rejections = []error{
	progress.ErrNegativePoints,
	progress.ErrNegativeScore,
	progress.ErrNegativeValue,
	progress.ErrQuizHistoryRewrite,
}

// ProgressError answers a failed store mutation: rejected input is a 400,
// anything else means the record could not be persisted and is logged.
func ProgressError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return BadRequest(c, err.Error())
		}
	}
	logger.Error("progress mutation failed", zap.String("path", c.Path()), zap.Error(err))
	return InternalServerError(c, "Could not save progress")
}
