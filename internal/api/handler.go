// Package api is the HTTP transport of the storefront. Every /api route runs
// inside a storefront session whose id is the storage namespace.
package api

import (
	"net/http"

	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/checkout"
	"shopswift-be/internal/compare"
	"shopswift-be/internal/delivery"
	"shopswift-be/internal/home"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/metrics"
	"shopswift-be/internal/middleware"
	"shopswift-be/internal/order"
	"shopswift-be/internal/search"
	"shopswift-be/internal/session"
	"shopswift-be/internal/storage"
	"shopswift-be/internal/user"
	"shopswift-be/internal/utils"
	"shopswift-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Catalog     *catalog.Store
	HomeSvc     home.Service
	CartSvc     cart.Service
	WishlistSvc wishlist.Service
	CompareSvc  compare.Service
	SearchSvc   search.Service
	UserSvc     user.Service
	OrderSvc    order.Service
	CheckoutSvc checkout.Service
	DeliverySvc delivery.Service
	Metrics     *metrics.Registry
}

type RouterConfig struct {
	Sessions   *session.Manager
	Locks      *storage.KeyedMutex
	Limiter    *middleware.RateLimiter
	CORSOrigin string
}

func NewRouter(h *Handler, rc RouterConfig) http.Handler {
	if h.Metrics == nil {
		h.Metrics = metrics.NewRegistry()
	}
	if rc.Locks == nil {
		rc.Locks = storage.NewKeyedMutex()
	}

	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS(rc.CORSOrigin))

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(rc.Sessions))
		if rc.Limiter != nil {
			r.Use(rc.Limiter.Middleware)
		}
		r.Use(middleware.SessionLock(rc.Locks))

		r.Get("/home", h.homeFeed)
		r.Post("/home/refresh", h.refreshHome)

		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/brands", h.listBrands)

		r.Route("/search", func(r chi.Router) {
			r.Get("/suggestions", h.suggest)
			r.Get("/recent", h.recentSearches)
			r.Post("/recent", h.recordSearch)
			r.Delete("/recent", h.clearSearches)
			r.Delete("/recent/{term}", h.removeSearch)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Post("/items", h.addToCart)
			r.Patch("/items/{id}", h.updateQuantity)
			r.Delete("/items/{id}", h.removeFromCart)
			r.Post("/items/{id}/toggle", h.toggleCartItem)
			r.Post("/select", h.selectAll)
			r.Delete("/selected", h.clearSelected)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", h.getWishlist)
			r.Post("/{id}/toggle", h.toggleWishlist)
			r.Post("/{id}/move-to-cart", h.moveToCart)
		})

		r.Route("/compare", func(r chi.Router) {
			r.Get("/", h.getComparison)
			r.Post("/{id}/toggle", h.toggleCompare)
			r.Delete("/", h.clearComparison)
		})

		r.Post("/auth/login", h.login)
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/logout", h.logout)
		r.Get("/me", h.me)
		r.Get("/onboarding", h.onboarding)
		r.Post("/onboarding", h.completeOnboarding)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Get("/{id}", h.getOrder)
			r.Post("/{id}/cancel", h.cancelOrder)
			r.Post("/{id}/advance", h.advanceOrder)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", h.beginCheckout)
			r.Get("/", h.checkoutState)
			r.Post("/guest", h.continueAsGuest)
			r.Post("/address", h.selectAddress)
			r.Post("/addresses", h.addAddress)
			r.Post("/confirm", h.confirmSummary)
			r.Post("/pay", h.pay)
		})

		r.Get("/delivery/estimate", h.estimateDelivery)
		r.Get("/delivery/last", h.lastPincode)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"products": h.Catalog.Len(),
		"metrics":  h.Metrics.Snapshot(),
	})
}

// namespace is the storage namespace of the request's session.
func namespace(r *http.Request) string {
	sid, _ := session.IDFrom(r.Context())
	return sid
}
