package api

import (
	"net/http"

	"shopswift-be/internal/utils"
)

func (h *Handler) estimateDelivery(w http.ResponseWriter, r *http.Request) {
	est, err := h.DeliverySvc.Check(r.Context(), namespace(r), r.URL.Query().Get("pincode"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, est)
}

func (h *Handler) lastPincode(w http.ResponseWriter, r *http.Request) {
	pin, err := h.DeliverySvc.LastPincode(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"pincode": pin})
}
