package product

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/logger"
	"multivendor-shop/internal/utils"

	"go.uber.org/zap"
)

const productColumns = `id, name, category, price, image_path, COALESCE(vendor_id, 0)`

type Repository interface {
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Delete(ctx context.Context, id, vendorID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	ListNewest(ctx context.Context) ([]*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, c category.Category) ([]*Product, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]*Product, error)
	Search(ctx context.Context, term string) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (*Product, error) {
	var p Product
	if err := s.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImagePath, &p.VendorID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("vendor_id", params.VendorID),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, category, price, image_path, vendor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		params.Name,
		string(params.Category),
		params.Price,
		params.ImagePath,
		params.VendorID,
	)

	p, err := scanProduct(row)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("success create product", zap.Int64("product_id", p.ID))
	return p, nil
}

// Delete removes the product only when it is owned by vendorID and reports
// how many rows went away (0 or 1).
func (r *repository) Delete(ctx context.Context, id, vendorID int64) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Delete"),
		zap.Int64("product_id", id),
		zap.Int64("vendor_id", vendorID),
	)

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND vendor_id = $2`, id, vendorID)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return 0, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	log.Info("delete product done", zap.Int64("rows_affected", n))
	return n, nil
}

// GetByID returns (nil, nil) when no product has the id.
func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("layer", "repository"),
			zap.Int64("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return p, nil
}

func (r *repository) ListNewest(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, "ListNewest",
		`SELECT `+productColumns+` FROM products ORDER BY id DESC`)
}

func (r *repository) ListAll(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, "ListAll",
		`SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *repository) ListByCategory(ctx context.Context, c category.Category) ([]*Product, error) {
	return r.list(ctx, "ListByCategory",
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY id`, string(c))
}

func (r *repository) ListByVendor(ctx context.Context, vendorID int64) ([]*Product, error) {
	return r.list(ctx, "ListByVendor",
		`SELECT `+productColumns+` FROM products WHERE vendor_id = $1 ORDER BY id`, vendorID)
}

// Search matches the term as a case-insensitive substring of name or category.
func (r *repository) Search(ctx context.Context, term string) ([]*Product, error) {
	return r.list(ctx, "Search",
		`SELECT `+productColumns+` FROM products WHERE name ILIKE $1 OR category ILIKE $1 ORDER BY id`,
		utils.LikePattern(term))
}

func (r *repository) list(ctx context.Context, method, query string, args ...any) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}
