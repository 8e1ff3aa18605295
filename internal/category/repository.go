package category

import (
	"context"
	"database/sql"
	"fmt"

	"multivendor-shop/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CountProducts(ctx context.Context, c Category) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountProducts(ctx context.Context, c Category) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category = $1`, string(c),
	).Scan(&n)
	if err != nil {
		logger.FromCtx(ctx).Error("count products failed",
			zap.String("layer", "repository"),
			zap.String("category", c.String()),
			zap.Error(err),
		)
		return 0, fmt.Errorf("count %s products: %w", c, err)
	}
	return n, nil
}
