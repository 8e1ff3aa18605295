package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"

	"github.com/stretchr/testify/assert"
)

// withSession runs the request through a session manager whose store holds s.
func withSession(t *testing.T, s *session.Session, h http.Handler) (*http.Request, http.Handler) {
	t.Helper()
	store := session.NewMemoryStore()
	m := session.NewManager(store, session.Options{Secret: []byte("test-secret"), TTL: time.Hour})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if s != nil {
		rec := httptest.NewRecorder()
		if err := m.Save(context.Background(), rec, s); err != nil {
			t.Fatal(err)
		}
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	return req, m.Middleware(h)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireRole(t *testing.T) {
	guard := RequireRole(user.RoleVendor)

	t.Run("Anonymous Redirects To Login", func(t *testing.T) {
		req, h := withSession(t, nil, guard(okHandler))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("Wrong Role Forbidden", func(t *testing.T) {
		req, h := withSession(t, &session.Session{ID: "c", UserID: 3, Role: user.RoleCustomer}, guard(okHandler))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Matching Role Passes", func(t *testing.T) {
		req, h := withSession(t, &session.Session{ID: "v", UserID: 2, Role: user.RoleVendor}, guard(okHandler))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Any Of Several Roles", func(t *testing.T) {
		multi := RequireRole(user.RoleAdmin, user.RoleVendor)
		req, h := withSession(t, &session.Session{ID: "a", UserID: 1, Role: user.RoleAdmin}, multi(okHandler))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		req, h := withSession(t, nil, RequireAuth(okHandler))
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})

	t.Run("Any Role", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleAdmin, user.RoleVendor, user.RoleCustomer} {
			req, h := withSession(t, &session.Session{ID: string(role), UserID: 7, Role: role}, RequireAuth(okHandler))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, role)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("Strict Tier On Login Post", func(t *testing.T) {
		h := NewRateLimiter("").Middleware(okHandler)

		codes := make([]int, 0, burstStrict+1)
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, http.StatusOK, codes[0])
		assert.Equal(t, http.StatusTooManyRequests, codes[burstStrict])
	})

	t.Run("Tiers Have Separate Buckets", func(t *testing.T) {
		h := NewRateLimiter("").Middleware(okHandler)

		for i := 0; i < burstStrict; i++ {
			req := httptest.NewRequest(http.MethodGet, "/payment_status/success", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest(http.MethodGet, "/customer/dashboard", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Resolve Tier", func(t *testing.T) {
		l := NewRateLimiter("s3cret")

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Service-Auth", "s3cret")
		_, _, tier := l.resolveRateTier(req)
		assert.Equal(t, "internal", tier)

		_, _, tier = l.resolveRateTier(httptest.NewRequest(http.MethodGet, "/login", nil))
		assert.Equal(t, "general", tier)

		_, _, tier = l.resolveRateTier(httptest.NewRequest(http.MethodPost, "/register", nil))
		assert.Equal(t, "strict", tier)
	})

	t.Run("Idle Buckets Evicted", func(t *testing.T) {
		l := NewRateLimiter("")
		now := time.Now()
		l.now = func() time.Time { return now }
		l.getVisitor("ip:1:general", limitGeneral, burstGeneral)

		l.now = func() time.Time { return now.Add(idleTTL + time.Second) }
		assert.Equal(t, 1, l.Cleanup())
		assert.Empty(t, l.visitors)
	})
}
