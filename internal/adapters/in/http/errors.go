package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes returned in Error.Code.
const (
	CodeInvalidInput       = "invalid_input"
	CodeNotFound           = "not_found"
	CodeInvalidTransition  = "invalid_transition"
	CodeInsufficientStock  = "insufficient_stock"
	CodeInternal           = "internal_error"
	internalErrorMessage   = "internal error"
	invalidBodyMessagePref = "invalid request body: "
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusOf maps an application error onto an HTTP status and error code.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, material.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, CodeInsufficientStock
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrInvalidCancellation):
		return http.StatusConflict, CodeInvalidTransition
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrYieldInputInvalid):
		return http.StatusBadRequest, CodeInvalidInput
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, code := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(status, Error{Code: code, Message: internalErrorMessage})
	}
	return ctx.JSON(status, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    CodeInvalidInput,
		Message: invalidBodyMessagePref + err.Error(),
	})
}
