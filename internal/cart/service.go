package cart

import (
	"context"
	"fmt"

	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductLookup resolves a product id; it returns (nil, nil) for ids that
// no longer exist.
type ProductLookup interface {
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

type Service interface {
	View(ctx context.Context, c Cart) (*View, error)
	Total(ctx context.Context, c Cart) (decimal.Decimal, error)
}

type service struct {
	products ProductLookup
}

func NewService(products ProductLookup) Service {
	return &service{products: products}
}

// View resolves each entry at its current price. Entries whose product was
// deleted are left out of Items and Total but stay in the stored cart.
func (s *service) View(ctx context.Context, c Cart) (*View, error) {
	items, err := s.resolve(ctx, c)
	if err != nil {
		return nil, err
	}
	return &View{Items: items, Total: sum(items)}, nil
}

// Total applies the same resolution rules as View.
func (s *service) Total(ctx context.Context, c Cart) (decimal.Decimal, error) {
	items, err := s.resolve(ctx, c)
	if err != nil {
		return decimal.Zero, err
	}
	return sum(items), nil
}

func (s *service) resolve(ctx context.Context, c Cart) ([]*product.Product, error) {
	items := make([]*product.Product, 0, len(c))
	skipped := 0

	for _, id := range c {
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			logger.FromCtx(ctx).Error("cart lookup failed",
				zap.String("layer", "service"),
				zap.Int64("product_id", id),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %w", ErrFailedResolveCart, err)
		}
		if p == nil {
			skipped++
			continue
		}
		items = append(items, p)
	}

	if skipped > 0 {
		logger.FromCtx(ctx).Debug("skipped dangling cart entries", zap.Int("skipped", skipped))
	}
	return items, nil
}

func sum(items []*product.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.Price)
	}
	return total
}
