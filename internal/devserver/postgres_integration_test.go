package devserver

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"bloomshop/internal/domain"
	"bloomshop/internal/migrate"
	cartlinerepo "bloomshop/internal/repository/cartline"
	orderrepo "bloomshop/internal/repository/order"
	productrepo "bloomshop/internal/repository/product"
	userrepo "bloomshop/internal/repository/user"
	wishlistrepo "bloomshop/internal/repository/wishlist"
)

func integrationPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE orders, wishlist_items, cart_items, products, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestRouter_IntegrationPostgresFlow(t *testing.T) {
	ctx := context.Background()
	pool := integrationPool(ctx, t)
	defer pool.Close()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), pool, Deps{
		Users:     userrepo.NewPostgres(pool, nil),
		CartLines: cartlinerepo.NewPostgres(pool, nil),
		Wishlist:  wishlistrepo.NewPostgres(pool, nil),
		Orders:    orderrepo.NewPostgres(pool, nil),
		Products:  productrepo.NewPostgres(pool, nil),
	})

	s := signUpTestUser(t, router)

	rec := doJSON(t, router, http.MethodPost, "/signup",
		`{"userName":"Rosa2","email":"rosa@example.com","password":"another"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected unique index to surface 409, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/carts",
		`{"email":"rosa@example.com","productId":"p1","title":"Tulip","price":5.5,"quantity":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add cart item: got %d (%s)", rec.Code, rec.Body.String())
	}
	var line domain.CartItem
	decode(t, rec, &line)

	rec = doJSON(t, router, http.MethodPut, "/carts/"+line.ID, `{"quantity":4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update quantity: got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/orders",
		`{"email":"rosa@example.com","cart":[{"productId":"p1","title":"Tulip","price":5.5,"quantity":4}],"subtotal":22,"shipping":4.99,"tax":2.2,"total":29.19}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: got %d (%s)", rec.Code, rec.Body.String())
	}
	var placed domain.Order
	decode(t, rec, &placed)
	if len(placed.Cart) != 1 || placed.Cart[0].Quantity != 4 {
		t.Fatalf("expected cart snapshot round-tripped through jsonb, got %+v", placed.Cart)
	}

	rec = doJSON(t, router, http.MethodGet, "/users/"+s.UserID+"/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: got %d", rec.Code)
	}
	var stats map[string]interface{}
	decode(t, rec, &stats)
	if stats["totalSpent"].(float64) != 29.19 {
		t.Fatalf("expected totalSpent 29.19, got %v", stats["totalSpent"])
	}
}
