package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeOf maps domain errors onto HTTP status codes. A gap in the rule
// table is an operator problem rather than a client one, so it stays a 500.
func statusCodeOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrOrderAlreadyTerminal),
		errors.Is(err, order.ErrOrderNotCancelable),
		errors.Is(err, order.ErrShipmentAlreadyDispatched):
		return http.StatusConflict
	case errors.Is(err, status.ErrUnknownStatusCode),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	code := statusCodeOf(err)
	message := err.Error()

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()))

		if !errors.Is(err, status.ErrNoMatchingRule) {
			message = "Failed to " + operation
		}
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
