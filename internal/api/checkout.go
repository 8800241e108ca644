package api

import (
	"errors"
	"net/http"

	"shopswift-be/internal/address"
	"shopswift-be/internal/checkout"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/metrics"
	"shopswift-be/internal/payment"
	"shopswift-be/internal/utils"

	"go.uber.org/zap"
)

// Counters exposed on /health.
const (
	metricOrdersPlaced     = "orders_placed"
	metricPaymentsDeclined = "payments_declined"
	metricPaymentsTimedOut = "payments_timed_out"
)

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, r)(h.CheckoutSvc.Begin(r.Context(), namespace(r)))
}

func (h *Handler) checkoutState(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, r)(h.CheckoutSvc.State(r.Context(), namespace(r)))
}

func (h *Handler) continueAsGuest(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, r)(h.CheckoutSvc.ContinueAsGuest(r.Context(), namespace(r)))
}

func (h *Handler) selectAddress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AddressID string `json:"addressId"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, r)(h.CheckoutSvc.SelectAddress(r.Context(), namespace(r), body.AddressID))
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var in address.CreateAddressInput
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeView(w, r)(h.CheckoutSvc.AddAddress(r.Context(), namespace(r), in))
}

func (h *Handler) confirmSummary(w http.ResponseWriter, r *http.Request) {
	h.writeView(w, r)(h.CheckoutSvc.ConfirmSummary(r.Context(), namespace(r)))
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Method string `json:"method"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	log := logger.FromCtx(r.Context()).With(
		zap.String("layer", "handler"),
		zap.String("method", "Checkout.Pay"),
		zap.String("payment_method", body.Method),
	)

	timer := metrics.StartTimer()
	receipt, err := h.CheckoutSvc.PlaceOrder(r.Context(), namespace(r), body.Method)
	switch {
	case errors.Is(err, payment.ErrDeclined):
		h.Metrics.Counter(metricPaymentsDeclined).Inc()
	case errors.Is(err, payment.ErrTimeout):
		h.Metrics.Counter(metricPaymentsTimedOut).Inc()
	case err == nil:
		h.Metrics.Counter(metricOrdersPlaced).Inc()
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info("checkout completed",
		zap.String("order_id", receipt.Order.ID),
		zap.Int64("total", receipt.Order.Total),
		zap.Duration("duration", timer.Duration()),
	)
	utils.WriteJSON(w, http.StatusCreated, receipt)
}

// writeView returns a sink for the (view, error) pair every step operation
// answers with.
func (h *Handler) writeView(w http.ResponseWriter, r *http.Request) func(*checkout.View, error) {
	return func(v *checkout.View, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, v)
	}
}
