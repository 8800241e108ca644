package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/checkout"
	"shopswift-be/internal/compare"
	"shopswift-be/internal/delivery"
	"shopswift-be/internal/home"
	"shopswift-be/internal/metrics"
	"shopswift-be/internal/order"
	"shopswift-be/internal/payment"
	"shopswift-be/internal/search"
	"shopswift-be/internal/session"
	"shopswift-be/internal/storage"
	"shopswift-be/internal/user"
	"shopswift-be/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t       *testing.T
	router  http.Handler
	store   *catalog.Store
	metrics *metrics.Registry
	token   string
}

func newTestServer(t *testing.T, outcome payment.Outcome) *testServer {
	t.Helper()

	kv := storage.NewMemoryStore()
	products := catalog.NewGeneratedStore(catalog.NewRand(42))

	cartSvc := cart.NewService(cart.NewRepository(kv), products)
	userRepo := user.NewRepository(kv)
	userSvc := user.NewService(userRepo)
	orderSvc := order.NewService(userRepo)

	h := &Handler{
		Catalog:     products,
		HomeSvc:     home.NewService(home.NewRepository(kv), products),
		CartSvc:     cartSvc,
		WishlistSvc: wishlist.NewService(wishlist.NewRepository(kv), products, cartSvc),
		CompareSvc:  compare.NewService(compare.NewRepository(kv), products),
		SearchSvc:   search.NewService(kv, products),
		UserSvc:     userSvc,
		OrderSvc:    orderSvc,
		CheckoutSvc: checkout.NewService(checkout.NewRepository(kv), cartSvc, userSvc, orderSvc, payment.NewSimulatedGateway(0, outcome)),
		DeliverySvc: delivery.NewService(kv, 0),
		Metrics:     metrics.NewRegistry(),
	}

	mgr, err := session.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	_, token, err := mgr.Issue()
	require.NoError(t, err)

	return &testServer{
		t:       t,
		router:  NewRouter(h, RouterConfig{Sessions: mgr, CORSOrigin: "http://localhost:3000"}),
		store:   products,
		metrics: h.Metrics,
		token:   token,
	}
}

// do sends a request inside the server's session and decodes the JSON
// answer into out when out is non-nil.
func (s *testServer) do(method, path string, body any, out any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func (s *testServer) inStock(n int) []catalog.Product {
	var out []catalog.Product
	for _, p := range s.store.All() {
		if p.InStock() {
			out = append(out, p)
		}
		if len(out) == n {
			break
		}
	}
	require.Len(s.t, out, n)
	return out
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	var body struct {
		Status   string            `json:"status"`
		Products int               `json:"products"`
		Metrics  map[string]uint64 `json:"metrics"`
	}
	w := s.do(http.MethodGet, "/health", nil, &body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, s.store.Len(), body.Products)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSessionIssuedOnFirstRequest(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(session.HeaderToken))
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	t.Run("categories", func(t *testing.T) {
		var cats []catalog.Category
		w := s.do(http.MethodGet, "/api/categories", nil, &cats)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, cats, 7)

		w = s.do(http.MethodGet, "/api/categories/nope", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("filtered products", func(t *testing.T) {
		var list productList
		w := s.do(http.MethodGet, "/api/products?category=mobiles&sort=price-low&maxPrice=40000", nil, &list)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, len(list.Products), list.Total)
		for i, p := range list.Products {
			assert.Equal(t, "mobiles", p.Category)
			assert.LessOrEqual(t, p.Price, int64(40000))
			if i > 0 {
				assert.LessOrEqual(t, list.Products[i-1].Price, p.Price)
			}
		}
		assert.NotEmpty(t, list.Brands)
	})

	t.Run("brand filter", func(t *testing.T) {
		var list productList
		w := s.do(http.MethodGet, "/api/products?brand=Apple,Samsung", nil, &list)
		require.Equal(t, http.StatusOK, w.Code)
		for _, p := range list.Products {
			assert.Contains(t, []string{"Apple", "Samsung"}, p.Brand)
		}
	})

	t.Run("bad query", func(t *testing.T) {
		for _, q := range []string{"sort=cheapest", "minPrice=abc", "minRating=x", "assured=maybe"} {
			w := s.do(http.MethodGet, "/api/products?"+q, nil, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, q)
		}
	})

	t.Run("product", func(t *testing.T) {
		var p catalog.Product
		w := s.do(http.MethodGet, "/api/products/1", nil, &p)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", p.ID)

		w = s.do(http.MethodGet, "/api/products/999999", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("suggestions", func(t *testing.T) {
		var sugg []catalog.Suggestion
		w := s.do(http.MethodGet, "/api/search/suggestions?q=mob", nil, &sugg)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, sugg)
		assert.Equal(t, catalog.SuggestionCategory, sugg[0].Type)
	})

	t.Run("home", func(t *testing.T) {
		var feed home.Feed
		s.do(http.MethodGet, "/api/home", nil, &feed)
		assert.True(t, feed.FirstVisit)

		s.do(http.MethodGet, "/api/home", nil, &feed)
		assert.False(t, feed.FirstVisit)

		w := s.do(http.MethodPost, "/api/home/refresh", nil, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		s.do(http.MethodGet, "/api/home", nil, &feed)
		assert.True(t, feed.FirstVisit)
	})
}

func TestCartRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)
	p := s.inStock(1)[0]

	var c cart.Cart
	w := s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": p.ID}, &c)
	require.Equal(t, http.StatusOK, w.Code)
	s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": p.ID}, &c)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)

	s.do(http.MethodPatch, "/api/cart/items/"+p.ID, map[string]int{"delta": -5}, &c)
	assert.Equal(t, 1, c.Items[0].Quantity)

	s.do(http.MethodPost, "/api/cart/items/"+p.ID+"/toggle", nil, &c)
	assert.False(t, c.Items[0].Selected)
	assert.Equal(t, int64(0), c.Totals.Total)

	s.do(http.MethodPost, "/api/cart/select", map[string]bool{"selected": true}, &c)
	assert.True(t, c.Items[0].Selected)

	w = s.do(http.MethodPost, "/api/cart/select", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.do(http.MethodDelete, "/api/cart/items/"+p.ID, nil, &c)
	assert.Empty(t, c.Items)

	w = s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": "999999"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/cart/items", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": p.ID, "quantity": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.do(http.MethodPost, "/api/cart/items", map[string]any{"productId": p.ID, "quantity": p.Stock + 10}, &c)
	require.Len(t, c.Items, 1)
	assert.Equal(t, p.Stock, c.Items[0].Quantity, "buy now quantity is capped at stock")
}

func TestCartRejectsOutOfStock(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	var soldOut *catalog.Product
	for _, p := range s.store.All() {
		if !p.InStock() {
			soldOut = &p
			break
		}
	}
	if soldOut == nil {
		t.Skip("catalog seed produced no out of stock product")
	}

	w := s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": soldOut.ID}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWishlistAndCompareRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)
	ps := s.inStock(5)

	var toggled struct {
		IDs   []string `json:"ids"`
		Added bool     `json:"added"`
	}
	s.do(http.MethodPost, "/api/wishlist/"+ps[0].ID+"/toggle", nil, &toggled)
	assert.True(t, toggled.Added)
	assert.Equal(t, []string{ps[0].ID}, toggled.IDs)

	var wl wishlistResponse
	s.do(http.MethodGet, "/api/wishlist", nil, &wl)
	require.Len(t, wl.Products, 1)

	var moved struct {
		Wishlist []string  `json:"wishlist"`
		Cart     cart.Cart `json:"cart"`
	}
	w := s.do(http.MethodPost, "/api/wishlist/"+ps[0].ID+"/move-to-cart", nil, &moved)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, moved.Wishlist)
	require.Len(t, moved.Cart.Items, 1)

	var cmp compare.Comparison
	for _, p := range ps[:4] {
		w = s.do(http.MethodPost, "/api/compare/"+p.ID+"/toggle", nil, &cmp)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Len(t, cmp.Products, 4)

	w = s.do(http.MethodPost, "/api/compare/"+ps[4].ID+"/toggle", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodDelete, "/api/compare", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	s.do(http.MethodGet, "/api/compare", nil, &cmp)
	assert.Empty(t, cmp.Products)
}

func TestSearchHistoryRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	var recent []string
	s.do(http.MethodPost, "/api/search/recent", map[string]string{"term": "red shoes"}, &recent)
	s.do(http.MethodPost, "/api/search/recent", map[string]string{"term": "phone"}, &recent)
	assert.Equal(t, []string{"phone", "red shoes"}, recent)

	s.do(http.MethodDelete, "/api/search/recent/red%20shoes", nil, &recent)
	assert.Equal(t, []string{"phone"}, recent)

	w := s.do(http.MethodPost, "/api/search/recent", map[string]string{"term": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// terms holding percent signs or slashes are decoded exactly once
	for _, term := range []string{"A", "%41", "usb c/lightning"} {
		s.do(http.MethodPost, "/api/search/recent", map[string]string{"term": term}, &recent)
	}
	s.do(http.MethodDelete, "/api/search/recent/%2541", nil, &recent)
	assert.Equal(t, []string{"usb c/lightning", "A", "phone"}, recent)
	s.do(http.MethodDelete, "/api/search/recent/usb%20c%2Flightning", nil, &recent)
	assert.Equal(t, []string{"A", "phone"}, recent)

	w = s.do(http.MethodDelete, "/api/search/recent", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	s.do(http.MethodGet, "/api/search/recent", nil, &recent)
	assert.Empty(t, recent)
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	w := s.do(http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "bad", "password": "short"}, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	fields := errorBody(t, w)["fields"].(map[string]any)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	var u user.User
	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "will@example.com", "password": "password1"}, &u)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "will@example.com", u.Email)

	w = s.do(http.MethodGet, "/api/me", nil, &u)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/auth/logout", nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var onboarding map[string]bool
	s.do(http.MethodGet, "/api/onboarding", nil, &onboarding)
	assert.False(t, onboarding["onboarded"])
	s.do(http.MethodPost, "/api/onboarding", nil, nil)
	s.do(http.MethodGet, "/api/onboarding", nil, &onboarding)
	assert.True(t, onboarding["onboarded"])
}

func TestCheckoutAndOrdersFlow(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)
	p := s.inStock(1)[0]

	w := s.do(http.MethodPost, "/api/checkout", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "nothing selected")

	s.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "will@example.com", "password": "password1"}, nil)
	s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": p.ID}, nil)

	var view checkout.View
	w = s.do(http.MethodPost, "/api/checkout", nil, &view)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, checkout.StepAddress, view.Step)

	w = s.do(http.MethodPost, "/api/checkout/pay", map[string]string{"method": "upi"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "wrong step")

	s.do(http.MethodPost, "/api/checkout/address", map[string]string{"addressId": "work"}, &view)
	assert.Equal(t, checkout.StepSummary, view.Step)
	require.NotNil(t, view.SelectedAddress)
	assert.Equal(t, "work", view.SelectedAddress.ID)

	s.do(http.MethodPost, "/api/checkout/confirm", nil, &view)
	assert.Equal(t, checkout.StepPayment, view.Step)

	w = s.do(http.MethodPost, "/api/checkout/pay", map[string]string{"method": "bitcoin"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var receipt checkout.Receipt
	w = s.do(http.MethodPost, "/api/checkout/pay", map[string]string{"method": "upi"}, &receipt)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, receipt.Recorded)
	assert.Equal(t, order.StatusProcessing, receipt.Order.Status)
	assert.Equal(t, uint64(1), s.metrics.Counter(metricOrdersPlaced).Load())

	var c cart.Cart
	s.do(http.MethodGet, "/api/cart", nil, &c)
	assert.Empty(t, c.Items)

	w = s.do(http.MethodGet, "/api/checkout", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var orders []order.Order
	s.do(http.MethodGet, "/api/orders?status=processing", nil, &orders)
	require.Len(t, orders, 1)
	id := receipt.Order.ID

	s.do(http.MethodGet, "/api/orders?status=Delivered", nil, &orders)
	assert.Empty(t, orders)

	w = s.do(http.MethodGet, "/api/orders?status=lost", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/orders/"+id+"/cancel", map[string]string{"reason": "because"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var o order.Order
	w = s.do(http.MethodPost, "/api/orders/"+id+"/advance", map[string]string{"status": "Shipped"}, &o)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.StatusShipped, o.Status)

	w = s.do(http.MethodPost, "/api/orders/"+id+"/cancel", map[string]string{"reason": order.CancelReasons[0]}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/api/orders/OD000000000", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutDeclined(t *testing.T) {
	s := newTestServer(t, payment.OutcomeDecline)
	p := s.inStock(1)[0]

	s.do(http.MethodPost, "/api/cart/items", map[string]string{"productId": p.ID}, nil)

	var view checkout.View
	s.do(http.MethodPost, "/api/checkout", nil, &view)
	assert.Equal(t, checkout.StepAuth, view.Step)
	assert.False(t, view.Guest)

	s.do(http.MethodPost, "/api/checkout/guest", nil, &view)
	assert.Equal(t, checkout.StepAddress, view.Step)

	w := s.do(http.MethodPost, "/api/checkout/addresses", map[string]string{"name": ""}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = s.do(http.MethodPost, "/api/checkout/addresses", map[string]string{
		"name":    "Asha",
		"street":  "12 Lake Road",
		"city":    "Kolkata",
		"pincode": "700029",
		"phone":   "+91 9876543210",
	}, &view)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, view.SelectedAddress)
	assert.Equal(t, "Asha", view.SelectedAddress.Name)

	s.do(http.MethodPost, "/api/checkout/confirm", nil, &view)
	require.Equal(t, checkout.StepPayment, view.Step)

	w = s.do(http.MethodPost, "/api/checkout/pay", map[string]string{"method": "card"}, nil)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, uint64(1), s.metrics.Counter(metricPaymentsDeclined).Load())

	s.do(http.MethodGet, "/api/checkout", nil, &view)
	assert.Equal(t, checkout.StepPayment, view.Step)

	var receipt checkout.Receipt
	w = s.do(http.MethodPost, "/api/checkout/pay", map[string]string{"method": "cod"}, &receipt)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.False(t, receipt.Recorded)
}

func TestDeliveryRoutes(t *testing.T) {
	s := newTestServer(t, payment.OutcomeSuccess)

	w := s.do(http.MethodGet, "/api/delivery/estimate?pincode=12", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var est delivery.Estimate
	w = s.do(http.MethodGet, "/api/delivery/estimate?pincode=700016", nil, &est)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, est.Days)
	assert.True(t, est.COD)

	var last map[string]string
	s.do(http.MethodGet, "/api/delivery/last", nil, &last)
	assert.Equal(t, "700016", last["pincode"])
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusGatewayTimeout, statusFor(payment.ErrTimeout))
	assert.Equal(t, http.StatusConflict, statusFor(checkout.ErrNoSession))
	assert.Equal(t, http.StatusUnauthorized, statusFor(order.ErrNoUser))
	assert.Equal(t, http.StatusInternalServerError, statusFor(cart.ErrFailedSaveCart))
}
