package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"

	"go.uber.org/zap"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Home sends a logged-in user to the dashboard for their role.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if !s.Authenticated() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, s.Role.Home(), http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "auth/login.html", nil)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	u, err := h.UserSvc.Login(ctx, r.PostFormValue("username"), r.PostFormValue("password"))
	if errors.Is(err, user.ErrInvalidCredentials) {
		s.AddFlash("Invalid Username or Password!")
		h.render(w, r, http.StatusOK, "auth/login.html", nil)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if err := h.Sessions.Login(ctx, w, s, u); err != nil {
		h.serverError(w, r, err)
		return
	}

	logger.FromCtx(ctx).Info("user logged in",
		zap.Int64("login_user_id", u.ID),
		zap.String("login_role", u.Role.String()),
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type registerPage struct {
	Roles []user.Role
}

var registerRoles = registerPage{Roles: []user.Role{user.RoleCustomer, user.RoleVendor, user.RoleAdmin}}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "auth/register.html", registerRoles)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	_, err := h.UserSvc.Register(ctx, r.PostFormValue("username"), r.PostFormValue("password"), r.PostFormValue("role"))
	switch {
	case err == nil:
		s.AddFlash("Registration successful, please log in.")
		h.redirect(w, r, s, "/login")
	case errors.Is(err, user.ErrUsernameExists):
		s.AddFlash("Username already exists!")
		h.render(w, r, http.StatusOK, "auth/register.html", registerRoles)
	case errors.Is(err, user.ErrMissingFields), errors.Is(err, user.ErrInvalidRole):
		s.AddFlash(err.Error())
		h.render(w, r, http.StatusOK, "auth/register.html", registerRoles)
	default:
		h.serverError(w, r, err)
	}
}

// Logout clears the whole session, cart included.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Sessions.Destroy(ctx, w, session.FromContext(ctx)); err != nil {
		logger.FromCtx(ctx).Warn("failed to delete session", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
