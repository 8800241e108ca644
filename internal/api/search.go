package api

import (
	"net/http"
	"net/url"

	"shopswift-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) recentSearches(w http.ResponseWriter, r *http.Request) {
	recent, err := h.SearchSvc.Recent(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, recent)
}

func (h *Handler) recordSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Term string `json:"term"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	recent, err := h.SearchSvc.Record(r.Context(), namespace(r), body.Term)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, recent)
}

func (h *Handler) removeSearch(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the path holds escaped slashes, and on the
	// already decoded Path otherwise.
	term := chi.URLParam(r, "term")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(term); err == nil {
			term = unescaped
		}
	}

	recent, err := h.SearchSvc.Remove(r.Context(), namespace(r), term)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, recent)
}

func (h *Handler) clearSearches(w http.ResponseWriter, r *http.Request) {
	if err := h.SearchSvc.Clear(r.Context(), namespace(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
