package order

import (
	"context"
	"fmt"
	"time"

	"multivendor-shop/internal/cart"
	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/metrics"
	"multivendor-shop/internal/payment"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutInput is one payment callback. Cart is nil when the session has
// no cart at all.
type CheckoutInput struct {
	CustomerID int64
	Status     payment.Status
	Cart       cart.Cart
}

type CheckoutResult struct {
	Status payment.Status
	Orders []Order
	// ClearCart tells the caller to drop the cart from the session.
	ClearCart bool
}

type Service interface {
	HandlePaymentStatus(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]Order, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type service struct {
	repo      Repository
	now       func() time.Time
	committed metrics.Counter
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// HandlePaymentStatus commits the cart as orders only for a "success" status
// with a cart present. A repeated success before the cart is cleared commits
// again; there is no idempotency key.
func (s *service) HandlePaymentStatus(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "HandlePaymentStatus"),
		zap.String("payment_status", input.Status.String()),
		zap.Int("cart_size", input.Cart.Len()),
	)

	result := &CheckoutResult{Status: input.Status}

	if !input.Status.IsSuccess() {
		log.Info("payment not successful, cart kept")
		return result, nil
	}
	if input.Cart == nil {
		log.Info("success callback without cart, nothing to commit")
		return result, nil
	}
	if input.CustomerID == 0 {
		return nil, ErrUnauthorized
	}

	if len(input.Cart) > 0 {
		orders, err := s.repo.CommitCheckout(ctx, CommitParams{
			CustomerID: input.CustomerID,
			ProductIDs: input.Cart,
			Status:     StatusPaid,
			Date:       s.now().Format(DateLayout),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedCommitOrder, err)
		}
		result.Orders = orders
		s.committed.Add(uint64(len(orders)))
	}

	result.ClearCart = true
	log.Info("checkout completed",
		zap.Int("orders", len(result.Orders)),
		zap.Uint64("orders_committed_total", s.committed.Load()),
	)
	return result, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	if customerID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.Revenue(ctx)
}
