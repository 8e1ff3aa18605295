package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"multivendor-shop/internal/auth"
	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/user"
	"multivendor-shop/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey struct{}

type Options struct {
	Secret     []byte
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// Manager ties a Store to the signed session cookie.
type Manager struct {
	store Store
	opts  Options
}

func NewManager(store Store, opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "session"
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &Manager{store: store, opts: opts}
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

func withSession(ctx context.Context, s *Session) context.Context {
	ctx = context.WithValue(ctx, ctxKey{}, s)
	if s.Authenticated() {
		ctx = utils.SetUserContext(ctx, s.UserID, s.Username, s.Role.String())
	}
	return ctx
}

// Middleware loads the session named by the cookie, or starts a fresh
// unsaved one when the cookie is missing, forged, expired or unknown.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.load(r)
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

func (m *Manager) load(r *http.Request) *Session {
	ctx := r.Context()
	log := logger.FromCtx(ctx)

	token := auth.ExtractSessionToken(r, m.opts.CookieName)
	if token == "" {
		return newSession()
	}

	id, err := auth.ParseSessionToken(m.opts.Secret, token)
	if err != nil {
		log.Debug("rejected session cookie", zap.Error(err))
		return newSession()
	}

	s, err := m.store.Load(ctx, id)
	if err != nil {
		log.Error("session store load failed", zap.Error(err))
		return newSession()
	}
	if s == nil {
		return newSession()
	}
	return s
}

func newSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// Save persists s and (re)issues its cookie. It must run before the
// response body is written.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if err := m.store.Save(ctx, s, m.opts.TTL); err != nil {
		return err
	}

	token, err := auth.SignSessionToken(m.opts.Secret, s.ID, m.opts.TTL)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Login rotates the session id, binds u and saves.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, s *Session, u *user.User) error {
	if err := m.store.Delete(ctx, s.ID); err != nil {
		logger.FromCtx(ctx).Warn("failed to drop pre-login session", zap.Error(err))
	}
	s.ID = uuid.NewString()
	s.login(u)
	return m.Save(ctx, w, s)
}

// Destroy deletes the stored session and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	err := m.store.Delete(ctx, s.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}
