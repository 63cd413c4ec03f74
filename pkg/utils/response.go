package utils

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "taller-system/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Total   *uint64     `json:"total,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(total) > 0 {
		response.Total = &total[0]
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(ctx echo.Context, err error, logger ...*zap.Logger) error {
	code := apperrors.StatusFor(err)
	if len(logger) > 0 && code >= 500 {
		logger[0].Error("unhandled error", zap.Error(err))
	}
	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: err.Error(),
	})
}
