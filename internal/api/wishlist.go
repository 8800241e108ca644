package api

import (
	"net/http"

	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/utils"
	"shopswift-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

type wishlistResponse struct {
	IDs      wishlist.Wishlist `json:"ids"`
	Products []catalog.Product `json:"products"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, ns := r.Context(), namespace(r)

	ids, err := h.WishlistSvc.List(ctx, ns)
	if err != nil {
		writeError(w, r, err)
		return
	}
	products, err := h.WishlistSvc.Products(ctx, ns)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, wishlistResponse{IDs: ids, Products: products})
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	ids, added, err := h.WishlistSvc.Toggle(r.Context(), namespace(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"ids":   ids,
		"added": added,
	})
}

func (h *Handler) moveToCart(w http.ResponseWriter, r *http.Request) {
	ctx, ns := r.Context(), namespace(r)

	ids, err := h.WishlistSvc.MoveToCart(ctx, ns, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.CartSvc.Get(ctx, ns)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, struct {
		Wishlist wishlist.Wishlist `json:"wishlist"`
		Cart     *cart.Cart        `json:"cart"`
	}{ids, c})
}
