package product

import (
	"context"
	"fmt"
	"strings"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, vendorID int64, input CreateProductInput) (*Product, error)
	Delete(ctx context.Context, id, vendorID int64) (bool, error)
	Get(ctx context.Context, id int64) (*Product, error)
	ListNewest(ctx context.Context) ([]*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, c string) ([]*Product, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]*Product, error)
	Search(ctx context.Context, term string) ([]*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, vendorID int64, input CreateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	c, err := category.Parse(input.Category)
	if err != nil {
		log.Warn("rejected product category", zap.String("category", input.Category))
		return nil, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, input.Price)
	}

	return s.repo.Create(ctx, CreateProductParams{
		Name:      name,
		Category:  c,
		Price:     price,
		ImagePath: strings.TrimSpace(input.ImagePath),
		VendorID:  vendorID,
	})
}

// Delete reports whether a product owned by vendorID was removed. Another
// vendor's product id is a silent no-op.
func (s *service) Delete(ctx context.Context, id, vendorID int64) (bool, error) {
	n, err := s.repo.Delete(ctx, id, vendorID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Get returns ErrProductNotFound when the id does not resolve.
func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ListNewest(ctx context.Context) ([]*Product, error) {
	return s.repo.ListNewest(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]*Product, error) {
	return s.repo.ListAll(ctx)
}

// ListByCategory filters on the raw path value; an unknown category simply
// matches nothing.
func (s *service) ListByCategory(ctx context.Context, c string) ([]*Product, error) {
	return s.repo.ListByCategory(ctx, category.Category(c))
}

func (s *service) ListByVendor(ctx context.Context, vendorID int64) ([]*Product, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *service) Search(ctx context.Context, term string) ([]*Product, error) {
	return s.repo.Search(ctx, term)
}
