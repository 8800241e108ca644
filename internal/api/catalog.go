package api

import (
	"net/http"
	"strconv"
	"strings"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type productList struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Brands   []string          `json:"brands"`
}

func (h *Handler) homeFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.HomeSvc.Feed(r.Context(), namespace(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, feed)
}

func (h *Handler) refreshHome(w http.ResponseWriter, r *http.Request) {
	if err := h.HomeSvc.Refresh(r.Context(), namespace(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Catalog.Categories())
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.Catalog.Category(chi.URLParam(r, "id"))
	if !ok {
		utils.WriteJSONError(w, "category not found", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products := catalog.Filter(h.Catalog.All(), c)
	utils.WriteJSON(w, http.StatusOK, productList{
		Products: products,
		Total:    len(products),
		Brands:   catalog.AvailableBrands(h.Catalog.All(), c.Query, c.Category),
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, catalog.ErrProductNotFound)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	utils.WriteJSON(w, http.StatusOK, catalog.AvailableBrands(h.Catalog.All(), q.Get("q"), q.Get("category")))
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.SearchSvc.Suggest(r.URL.Query().Get("q")))
}

// parseCriteria reads the filter panel from the query string:
// q, category, minPrice, maxPrice, brand (repeated or comma separated),
// minRating, minDiscount, assured and sort.
func parseCriteria(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()

	c := catalog.Criteria{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	}

	var err error
	if c.MinPrice, err = queryInt(q.Get("minPrice")); err != nil {
		return c, badRequest("minPrice: %v", err)
	}
	if c.MaxPrice, err = queryInt(q.Get("maxPrice")); err != nil {
		return c, badRequest("maxPrice: %v", err)
	}
	if v := q.Get("minRating"); v != "" {
		if c.MinRating, err = strconv.ParseFloat(v, 64); err != nil {
			return c, badRequest("minRating: %v", err)
		}
	}
	minDiscount, err := queryInt(q.Get("minDiscount"))
	if err != nil {
		return c, badRequest("minDiscount: %v", err)
	}
	c.MinDiscount = int(minDiscount)

	if v := q.Get("assured"); v != "" {
		if c.AssuredOnly, err = strconv.ParseBool(v); err != nil {
			return c, badRequest("assured: %v", err)
		}
	}

	for _, raw := range q["brand"] {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.Brands = append(c.Brands, b)
			}
		}
	}

	if c.Sort, err = catalog.ParseSortKey(q.Get("sort")); err != nil {
		return c, err
	}

	return c, nil
}

func queryInt(v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
