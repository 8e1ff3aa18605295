package cart

import (
	"multivendor-shop/internal/product"

	"github.com/shopspring/decimal"
)

// Cart is the ordered list of product ids kept in a session. Duplicates are
// allowed; a nil Cart means the session has no cart at all.
type Cart []int64

// Add appends id, creating the cart when absent. The id is not checked
// against the catalog.
func (c Cart) Add(id int64) Cart {
	if c == nil {
		c = Cart{}
	}
	return append(c, id)
}

func (c Cart) Len() int {
	return len(c)
}

// View is a cart resolved against the current catalog.
type View struct {
	Items []*product.Product
	Total decimal.Decimal
}
