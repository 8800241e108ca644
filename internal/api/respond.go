package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/checkout"
	"shopswift-be/internal/compare"
	"shopswift-be/internal/delivery"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/order"
	"shopswift-be/internal/payment"
	"shopswift-be/internal/search"
	"shopswift-be/internal/user"
	"shopswift-be/internal/utils"
	"shopswift-be/internal/wishlist"

	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: invalid JSON body", errBadRequest)
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func statusFor(err error) int {
	var verr *utils.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity

	case errors.Is(err, payment.ErrDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, payment.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout

	case isAny(err,
		errBadRequest,
		catalog.ErrUnknownSort,
		cart.ErrInvalidProductID,
		cart.ErrInvalidQuantity,
		cart.ErrUnknownAction,
		search.ErrEmptyTerm,
		order.ErrInvalidCancelReason,
		order.ErrUnknownStatus,
		payment.ErrInvalidMethod,
		payment.ErrInvalidAmount,
		delivery.ErrInvalidPincode,
	):
		return http.StatusBadRequest

	case isAny(err, user.ErrNotLoggedIn, order.ErrNoUser):
		return http.StatusUnauthorized

	case isAny(err,
		catalog.ErrProductNotFound,
		cart.ErrProductNotFound,
		wishlist.ErrProductNotFound,
		compare.ErrProductNotFound,
		order.ErrOrderNotFound,
		checkout.ErrAddressNotFound,
	):
		return http.StatusNotFound

	case isAny(err,
		cart.ErrOutOfStock,
		compare.ErrCompareFull,
		order.ErrInvalidTransition,
		order.ErrNotCancellable,
		checkout.ErrNothingSelected,
		checkout.ErrNoSession,
		checkout.ErrWrongStep,
		checkout.ErrNoAddress,
	):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeError maps a service error onto a status code. Internal failures are
// logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
	)

	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn("validation failed", zap.Any("fields", verr.Fields))
		utils.WriteJSON(w, code, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case code == http.StatusInternalServerError:
		log.Error("request failed", zap.Error(err))
		utils.WriteJSONError(w, http.StatusText(code), code)
	default:
		log.Warn("request rejected", zap.Int("status", code), zap.Error(err))
		utils.WriteJSONError(w, err.Error(), code)
	}
}
