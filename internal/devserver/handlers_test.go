package devserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository/cartline"
	"bloomshop/internal/repository/order"
	"bloomshop/internal/repository/product"
	"bloomshop/internal/repository/user"
	"bloomshop/internal/repository/wishlist"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return buildRouter(logDiscard(), nil, Deps{
		Users:     user.NewMemory(),
		CartLines: cartline.NewMemory(),
		Wishlist:  wishlist.NewMemory(),
		Orders:    order.NewMemory(),
		Products:  product.NewMemory(),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
}

func signUpTestUser(t *testing.T, router *gin.Engine) domain.Session {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/signup",
		`{"userName":"Rosa","email":"rosa@example.com","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var s domain.Session
	decode(t, rec, &s)
	return s
}

func TestSignupHandler_CreatedAndConflict(t *testing.T) {
	router := newTestRouter()

	s := signUpTestUser(t, router)
	if s.UserID == "" {
		t.Fatalf("expected assigned user id")
	}
	if s.Email != "rosa@example.com" {
		t.Fatalf("expected normalized email, got %q", s.Email)
	}

	rec := doJSON(t, router, http.MethodPost, "/signup",
		`{"userName":"Other","email":"ROSA@example.com","password":"different"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["message"] == "" {
		t.Fatalf("expected message in conflict body")
	}
}

func TestCheckPasswordHandler(t *testing.T) {
	router := newTestRouter()
	signUpTestUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"rosa@example.com","password":"secret123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var s domain.Session
	decode(t, rec, &s)
	if s.UserName != "Rosa" {
		t.Fatalf("expected session for Rosa, got %+v", s)
	}

	rec = doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"rosa@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"nobody@example.com","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rec.Code)
	}
}

func TestCartHandlers_Flow(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"rosa@example.com","productId":"p1","title":"Tulip","price":5.5,"quantity":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.CartItem
	decode(t, rec, &created)
	if created.ID == "" {
		t.Fatalf("expected assigned line id")
	}

	doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"other@example.com","productId":"p2","title":"Rose","price":9,"quantity":1}`)

	rec = doJSON(t, router, http.MethodGet, "/carts?email=rosa%40example.com", "")
	var items []domain.CartItem
	decode(t, rec, &items)
	if len(items) != 1 || items[0].ProductID != "p1" {
		t.Fatalf("expected only rosa's line, got %+v", items)
	}

	rec = doJSON(t, router, http.MethodPut, "/carts/"+created.ID, `{"quantity":7}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var updated domain.CartItem
	decode(t, rec, &updated)
	if updated.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", updated.Quantity)
	}

	rec = doJSON(t, router, http.MethodPut, "/carts/missing", `{"quantity":2}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown line, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/carts/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/carts?email=rosa%40example.com", "")
	decode(t, rec, &items)
	if len(items) != 0 {
		t.Fatalf("expected empty cart after delete, got %+v", items)
	}
}

func TestClearCartHandler_OnlyTargetEmail(t *testing.T) {
	router := newTestRouter()
	doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"rosa@example.com","productId":"p1","title":"Tulip","price":5.5,"quantity":2}`)
	doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"other@example.com","productId":"p2","title":"Rose","price":9,"quantity":1}`)

	rec := doJSON(t, router, http.MethodDelete, "/cart/clear", `{"email":"rosa@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []domain.CartItem
	rec = doJSON(t, router, http.MethodGet, "/carts?email=rosa%40example.com", "")
	decode(t, rec, &items)
	if len(items) != 0 {
		t.Fatalf("expected rosa's cart cleared, got %+v", items)
	}
	rec = doJSON(t, router, http.MethodGet, "/carts?email=other%40example.com", "")
	decode(t, rec, &items)
	if len(items) != 1 {
		t.Fatalf("expected other's cart untouched, got %+v", items)
	}
}

func TestWishlistHandlers_Flow(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/wishlist",
		`{"email":"rosa@example.com","productId":"p9","title":"Orchid","price":24,"inStock":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.WishlistItem
	decode(t, rec, &created)

	rec = doJSON(t, router, http.MethodGet, "/wishlist?email=rosa%40example.com", "")
	var items []domain.WishlistItem
	decode(t, rec, &items)
	if len(items) != 1 || items[0].Title != "Orchid" {
		t.Fatalf("expected one wishlist row, got %+v", items)
	}

	rec = doJSON(t, router, http.MethodDelete, "/wishlist/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodDelete, "/wishlist/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestOrderHandlers_Flow(t *testing.T) {
	router := newTestRouter()

	body := `{"email":"rosa@example.com","cart":[{"productId":"p1","title":"Tulip","price":5.5,"quantity":2}],` +
		`"subtotal":11,"shipping":4.99,"tax":1.1,"total":17.09}`
	rec := doJSON(t, router, http.MethodPost, "/orders", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.Order
	decode(t, rec, &created)
	if created.ID == "" || created.Status != domain.OrderStatusPlaced {
		t.Fatalf("expected placed order with id, got %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned createdAt")
	}

	rec = doJSON(t, router, http.MethodGet, "/orders/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var fetched domain.Order
	decode(t, rec, &fetched)
	if len(fetched.Cart) != 1 || fetched.Total != 17.09 {
		t.Fatalf("unexpected order payload: %+v", fetched)
	}

	rec = doJSON(t, router, http.MethodGet, "/orders?email=rosa%40example.com", "")
	var orders []domain.Order
	decode(t, rec, &orders)
	if len(orders) != 1 {
		t.Fatalf("expected one order, got %d", len(orders))
	}

	rec = doJSON(t, router, http.MethodGet, "/orders/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateOrderHandler_RejectsEmptyCart(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodPost, "/orders", `{"email":"rosa@example.com","cart":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
}

func TestProductsHandler_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	products := product.NewMemory()
	seeded, _ := products.Create(context.Background(), domain.Product{Title: "Tulip", Category: "flowers", Price: 5.5, InStock: true})
	products.Create(context.Background(), domain.Product{Title: "Vase", Category: "accessories", Price: 15, InStock: true})
	router := buildRouter(logDiscard(), nil, Deps{
		Users:     user.NewMemory(),
		CartLines: cartline.NewMemory(),
		Wishlist:  wishlist.NewMemory(),
		Orders:    order.NewMemory(),
		Products:  products,
	})

	rec := doJSON(t, router, http.MethodGet, "/products", "")
	var all []domain.Product
	decode(t, rec, &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}

	rec = doJSON(t, router, http.MethodGet, "/products?category=flowers", "")
	var flowers []domain.Product
	decode(t, rec, &flowers)
	if len(flowers) != 1 || flowers[0].Title != "Tulip" {
		t.Fatalf("expected only flowers, got %+v", flowers)
	}

	rec = doJSON(t, router, http.MethodGet, "/products?id="+seeded.ID, "")
	var byID []domain.Product
	decode(t, rec, &byID)
	if len(byID) != 1 || byID[0].ID != seeded.ID {
		t.Fatalf("expected lookup by id, got %+v", byID)
	}
}

func TestCreateProductHandler_Seeds(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/products",
		`{"title":"Peony","category":"flowers","price":12.5,"inStock":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created domain.Product
	decode(t, rec, &created)
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned id and createdAt, got %+v", created)
	}

	rec = doJSON(t, router, http.MethodPost, "/products", `{"category":"flowers"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestChangePasswordHandler(t *testing.T) {
	router := newTestRouter()
	s := signUpTestUser(t, router)

	rec := doJSON(t, router, http.MethodPut, "/users/"+s.UserID+"/password",
		`{"currentPassword":"wrong","newPassword":"brandnew1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPut, "/users/"+s.UserID+"/password",
		`{"currentPassword":"secret123","newPassword":"brandnew1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"rosa@example.com","password":"brandnew1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected new password to work, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"rosa@example.com","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected old password rejected, got %d", rec.Code)
	}
}

func TestUpdateUserHandler_MergesSettings(t *testing.T) {
	router := newTestRouter()
	s := signUpTestUser(t, router)

	rec := doJSON(t, router, http.MethodPut, "/users/"+s.UserID,
		`{"settings":{"newsletter":true}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPut, "/users/"+s.UserID,
		`{"userName":"Rosalind","settings":{"currency":"EUR"}}`)
	var updated domain.Session
	decode(t, rec, &updated)
	if updated.UserName != "Rosalind" {
		t.Fatalf("expected renamed user, got %+v", updated)
	}
	if updated.Settings["newsletter"] != true || updated.Settings["currency"] != "EUR" {
		t.Fatalf("expected merged settings, got %+v", updated.Settings)
	}
}

func TestExportAndStatsHandlers(t *testing.T) {
	router := newTestRouter()
	s := signUpTestUser(t, router)

	doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"rosa@example.com","productId":"p1","title":"Tulip","price":5,"quantity":3}`)
	doJSON(t, router, http.MethodPost, "/wishlist",
		`{"email":"rosa@example.com","productId":"p9","title":"Orchid","price":24,"inStock":true}`)
	doJSON(t, router, http.MethodPost, "/orders",
		`{"email":"rosa@example.com","cart":[{"productId":"p2","title":"Rose","price":10,"quantity":1}],"total":15.99}`)

	rec := doJSON(t, router, http.MethodGet, "/users/"+s.UserID+"/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var export map[string]json.RawMessage
	decode(t, rec, &export)
	for _, key := range []string{"user", "cart", "wishlist", "orders"} {
		if _, ok := export[key]; !ok {
			t.Fatalf("export missing %q", key)
		}
	}

	rec = doJSON(t, router, http.MethodGet, "/users/"+s.UserID+"/stats", "")
	var stats map[string]interface{}
	decode(t, rec, &stats)
	if stats["cartItems"].(float64) != 3 {
		t.Fatalf("expected 3 cart items, got %v", stats["cartItems"])
	}
	if stats["cartValue"].(float64) != 15 {
		t.Fatalf("expected cart value 15, got %v", stats["cartValue"])
	}
	if stats["orders"].(float64) != 1 || stats["totalSpent"].(float64) != 15.99 {
		t.Fatalf("unexpected order stats: %v", stats)
	}
}

func TestDeleteUserHandler_CascadesRows(t *testing.T) {
	router := newTestRouter()
	s := signUpTestUser(t, router)

	doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"rosa@example.com","productId":"p1","title":"Tulip","price":5,"quantity":1}`)
	doJSON(t, router, http.MethodPost, "/wishlist",
		`{"email":"rosa@example.com","productId":"p9","title":"Orchid","price":24}`)

	rec := doJSON(t, router, http.MethodDelete, "/users/"+s.UserID, `{"email":"rosa@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/users/"+s.UserID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	var items []domain.CartItem
	rec = doJSON(t, router, http.MethodGet, "/carts?email=rosa%40example.com", "")
	decode(t, rec, &items)
	if len(items) != 0 {
		t.Fatalf("expected cart rows removed, got %+v", items)
	}

	rec = doJSON(t, router, http.MethodPost, "/checkpassword",
		`{"email":"rosa@example.com","password":"secret123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected sign-in rejected after delete, got %d", rec.Code)
	}
}
