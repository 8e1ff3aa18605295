package web

import (
	"multivendor-shop/internal/admin"
	"multivendor-shop/internal/cart"
	"multivendor-shop/internal/order"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"
)

// Handler holds the services behind the HTML routes.
type Handler struct {
	UserSvc    user.Service
	ProductSvc product.Service
	CartSvc    cart.Service
	OrderSvc   order.Service
	AdminSvc   admin.Service
	Sessions   *session.Manager

	views *views
}

func NewHandler(h Handler) (*Handler, error) {
	v, err := loadViews()
	if err != nil {
		return nil, err
	}
	h.views = v
	return &h, nil
}
