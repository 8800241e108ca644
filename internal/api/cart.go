package api

import (
	"net/http"

	"shopswift-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.CartSvc.Get(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	c, err := h.CartSvc.AddQuantity(r.Context(), namespace(r), body.ProductID, quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.CartSvc.UpdateQuantity(r.Context(), namespace(r), chi.URLParam(r, "id"), body.Delta)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.CartSvc.Remove(r.Context(), namespace(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) toggleCartItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.CartSvc.ToggleSelection(r.Context(), namespace(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) selectAll(w http.ResponseWriter, r *http.Request) {
	body := struct {
		Selected *bool `json:"selected"`
	}{}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if body.Selected == nil {
		writeError(w, r, badRequest("selected is required"))
		return
	}

	c, err := h.CartSvc.SelectAll(r.Context(), namespace(r), *body.Selected)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) clearSelected(w http.ResponseWriter, r *http.Request) {
	c, err := h.CartSvc.ClearSelected(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}
