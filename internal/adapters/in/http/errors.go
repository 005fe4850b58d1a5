package http

import (
	"errors"
	"net/http"

	"frangodahora/internal/core/domain/model/order"
	"frangodahora/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON envelope returned for every failed request.
// Stock rejections also carry the quantity still available, so the intake
// screen can tell the operator how much would fit.
type errorResponse struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Remaining *float64 `json:"remaining,omitempty"`
}

// writeError maps application errors to HTTP statuses. Anything that does
// not match a known business error is a 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var stockErr *errs.InsufficientStockError
	if errors.As(err, &stockErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:      http.StatusConflict,
			Message:   err.Error(),
			Remaining: &stockErr.Remaining,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrOrderNotPending),
		errors.Is(err, order.ErrAwaitingOrdersMustBeRejected),
		errors.Is(err, order.ErrNotAMarketplaceOrder):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrRemoteAuth),
		errors.Is(err, errs.ErrRemoteCall):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

// writeBadRequest is used where the failure is known to be the caller's
// fault before any use case ran, e.g. malformed bodies and parameters.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
