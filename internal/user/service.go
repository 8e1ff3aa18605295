package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"multivendor-shop/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, password, role string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, username, password, role string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	r, err := ParseRole(role)
	if err != nil {
		log.Warn("rejected registration role", zap.String("role", role))
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, username, hashed, r)
	if err != nil {
		return nil, err
	}

	log.Info("register service completed",
		zap.Int64("new_user_id", u.ID),
		zap.String("new_role", u.Role.String()),
	)
	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("username not found")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to look up user", zap.Error(err))
		return nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Info("password not match", zap.Int64("attempted_user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Get returns ErrUserNotFound when the id does not resolve.
func (s *service) Get(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
