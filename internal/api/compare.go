package api

import (
	"net/http"

	"shopswift-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getComparison(w http.ResponseWriter, r *http.Request) {
	c, err := h.CompareSvc.Get(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) toggleCompare(w http.ResponseWriter, r *http.Request) {
	c, err := h.CompareSvc.Toggle(r.Context(), namespace(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) clearComparison(w http.ResponseWriter, r *http.Request) {
	if err := h.CompareSvc.Clear(r.Context(), namespace(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
