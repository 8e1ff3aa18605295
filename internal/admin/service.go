package admin

import (
	"context"
	"fmt"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/user"

	"github.com/shopspring/decimal"
)

type UserLister interface {
	List(ctx context.Context) ([]*user.User, error)
}

type ProductLister interface {
	ListAll(ctx context.Context) ([]*product.Product, error)
}

type RevenueSource interface {
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type CategoryCounter interface {
	Counts(ctx context.Context) ([]category.Count, error)
}

type Dashboard struct {
	Users    []*user.User
	Products []*product.Product
	Revenue  decimal.Decimal
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Customers(ctx context.Context) ([]*user.User, error)
	Products(ctx context.Context) ([]*product.Product, error)
	Categories(ctx context.Context) ([]category.Count, error)
}

type service struct {
	users      UserLister
	products   ProductLister
	orders     RevenueSource
	categories CategoryCounter
}

func NewService(users UserLister, products ProductLister, orders RevenueSource, categories CategoryCounter) Service {
	return &service{users: users, products: products, orders: orders, categories: categories}
}

// Dashboard gathers every user, every product and the total revenue. Revenue
// is zero when no orders exist.
func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	revenue, err := s.orders.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue: %w", err)
	}

	return &Dashboard{Users: users, Products: products, Revenue: revenue}, nil
}

// Customers lists every account, whatever its role.
func (s *service) Customers(ctx context.Context) ([]*user.User, error) {
	return s.users.List(ctx)
}

func (s *service) Products(ctx context.Context) ([]*product.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *service) Categories(ctx context.Context) ([]category.Count, error) {
	return s.categories.Counts(ctx)
}
