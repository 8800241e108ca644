package api

import (
	"net/http"
	"strings"

	"shopswift-be/internal/order"
	"shopswift-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// listOrders filters the history by q and status. status may repeat or be
// comma separated.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := order.Filter{Query: q.Get("q")}

	for _, raw := range q["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			st, err := order.ParseStatus(s)
			if err != nil {
				writeError(w, r, err)
				return
			}
			f.Statuses = append(f.Statuses, st)
		}
	}

	orders, err := h.OrderSvc.List(r.Context(), namespace(r), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.OrderSvc.Get(r.Context(), namespace(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.OrderSvc.Cancel(r.Context(), namespace(r), chi.URLParam(r, "id"), body.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	to, err := order.ParseStatus(body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.OrderSvc.Advance(r.Context(), namespace(r), chi.URLParam(r, "id"), to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}
