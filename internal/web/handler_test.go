package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"multivendor-shop/internal/admin"
	"multivendor-shop/internal/cart"
	"multivendor-shop/internal/category"
	"multivendor-shop/internal/order"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "category", "price", "image_path", "vendor_id"}

type testEnv struct {
	mock     sqlmock.Sqlmock
	store    *session.MemoryStore
	sessions *session.Manager
	server   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	productRepo := product.NewRepository(db)
	productSvc := product.NewService(productRepo)
	userSvc := user.NewService(user.NewRepository(db))
	orderSvc := order.NewService(order.NewRepository(db))
	categorySvc := category.NewService(category.NewRepository(db))

	store := session.NewMemoryStore()
	sessions := session.NewManager(store, session.Options{Secret: []byte("test-secret"), TTL: time.Hour})

	h, err := NewHandler(Handler{
		UserSvc:    userSvc,
		ProductSvc: productSvc,
		CartSvc:    cart.NewService(productRepo),
		OrderSvc:   orderSvc,
		AdminSvc:   admin.NewService(userSvc, productSvc, orderSvc, categorySvc),
		Sessions:   sessions,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.Routes(mux)

	return &testEnv{mock: mock, store: store, sessions: sessions, server: sessions.Middleware(mux)}
}

// login stores s and returns the cookie that names it.
func (e *testEnv) login(t *testing.T, s *session.Session) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, e.sessions.Save(context.Background(), rec, s))
	return sessionCookie(t, rec)
}

func (e *testEnv) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, path, nil), cookie)
}

func (e *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req, cookie)
}

func (e *testEnv) loadSession(t *testing.T, id string) *session.Session {
	t.Helper()
	s, err := e.store.Load(context.Background(), id)
	require.NoError(t, err)
	return s
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			found = c
		}
	}
	require.NotNil(t, found, "no session cookie set")
	return found
}

func customerSession() *session.Session {
	return &session.Session{ID: "cust", UserID: 5, Username: "carol", Role: user.RoleCustomer}
}

func vendorSession() *session.Session {
	return &session.Session{ID: "vend", UserID: 2, Username: "victor", Role: user.RoleVendor}
}

func adminSession() *session.Session {
	return &session.Session{ID: "adm", UserID: 1, Username: "root", Role: user.RoleAdmin}
}
