package product

import (
	"multivendor-shop/internal/category"

	"github.com/shopspring/decimal"
)

// Product is a vendor listing. Price is read live wherever it is shown, so
// carts always reflect the current value.
type Product struct {
	ID        int64
	Name      string
	Category  category.Category
	Price     decimal.Decimal
	ImagePath string
	VendorID  int64
}

type CreateProductParams struct {
	Name      string
	Category  category.Category
	Price     decimal.Decimal
	ImagePath string
	VendorID  int64
}

// CreateProductInput is the raw vendor form.
type CreateProductInput struct {
	Name      string
	Category  string
	Price     string
	ImagePath string
}
