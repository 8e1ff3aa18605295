package order

import (
	"context"
	"database/sql"
	"errors"

	"multivendor-shop/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CommitParams describes one checkout commit.
type CommitParams struct {
	CustomerID int64
	ProductIDs []int64
	Status     string
	Date       string
}

type Repository interface {
	CommitCheckout(ctx context.Context, params CommitParams) ([]Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CommitCheckout snapshots every product id that still resolves into its own
// order row and commits them together. Ids that no longer resolve are
// skipped. Any failure rolls the whole batch back.
func (r *repository) CommitCheckout(ctx context.Context, params CommitParams) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CommitCheckout"),
		zap.Int64("customer_id", params.CustomerID),
		zap.Int("cart_size", len(params.ProductIDs)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	orders := make([]Order, 0, len(params.ProductIDs))

	for _, pid := range params.ProductIDs {
		var (
			name      string
			imagePath string
			price     decimal.Decimal
		)
		err := tx.QueryRowContext(ctx,
			`SELECT name, image_path, price FROM products WHERE id = $1`, pid,
		).Scan(&name, &imagePath, &price)
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("skipping unresolved product", zap.Int64("product_id", pid))
			continue
		}
		if err != nil {
			log.Error("product lookup failed", zap.Int64("product_id", pid), zap.Error(err))
			return nil, err
		}

		var id int64
		err = tx.QueryRowContext(ctx, `
			INSERT INTO orders (customer_id, product_name, image_path, total, status, date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			params.CustomerID, name, imagePath, price, params.Status, params.Date,
		).Scan(&id)
		if err != nil {
			log.Error("insert order failed", zap.Int64("product_id", pid), zap.Error(err))
			return nil, err
		}

		orders = append(orders, NewOrder(id, params.CustomerID, name, imagePath, price, params.Status, params.Date))
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout committed", zap.Int("orders", len(orders)))
	return orders, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByCustomer"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, product_name, image_path, total, status, date
		FROM orders
		WHERE customer_id = $1
		ORDER BY id`, customerID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		var id, cid int64
		var productName, imagePath, status, date string
		var total decimal.Decimal
		if err := rows.Scan(&id, &cid, &productName, &imagePath, &total, &status, &date); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, NewOrder(id, cid, productName, imagePath, total, status, date))
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// Revenue is the sum of every order total; with no orders the NULL sum is
// reported as zero.
func (r *repository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, `SELECT SUM(total) FROM orders`).Scan(&sum); err != nil {
		logger.FromCtx(ctx).Error("revenue query failed", zap.String("layer", "repository"), zap.Error(err))
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
