package web

import (
	"errors"
	"net/http"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/order"
	"multivendor-shop/internal/payment"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/user"
	"multivendor-shop/internal/utils"

	"github.com/shopspring/decimal"
)

type catalogPage struct {
	Products   []*product.Product
	Categories []category.Category
}

func (h *Handler) CustomerDashboard(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductSvc.ListNewest(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/dashboard.html",
		catalogPage{Products: products, Categories: category.All()})
}

type categoryPage struct {
	Category string
	Products []*product.Product
}

func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	c := r.PathValue("category")

	products, err := h.ProductSvc.ListByCategory(r.Context(), c)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/view_products.html", categoryPage{Category: c, Products: products})
}

func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p, err := h.ProductSvc.Get(r.Context(), id)
	if errors.Is(err, product.ErrProductNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/product.html", p)
}

type searchPage struct {
	Query    string
	Products []*product.Product
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")

	products, err := h.ProductSvc.Search(r.Context(), q)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/search_results.html", searchPage{Query: q, Products: products})
}

// Profile reads the account fresh; a session whose user is gone is ended.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	u, err := h.UserSvc.Get(ctx, s.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		h.Logout(w, r)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/profile.html", u)
}

// AddToCart appends the id without checking that the product exists.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.AddToCart(id)
	s.AddFlash("Product added to cart")
	h.redirect(w, r, s, "/customer/dashboard")
}

func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	view, err := h.CartSvc.View(r.Context(), s.Cart)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/cart.html", view)
}

type checkoutPage struct {
	Total decimal.Decimal
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	total, err := h.CartSvc.Total(r.Context(), s.Cart)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/checkout.html", checkoutPage{Total: total})
}

// PaymentStatus commits the cart on "success" and always renders the status
// page.
func (h *Handler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	res, err := h.OrderSvc.HandlePaymentStatus(ctx, order.CheckoutInput{
		CustomerID: s.UserID,
		Status:     payment.ParseStatus(r.PathValue("status")),
		Cart:       s.Cart,
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if res.ClearCart {
		s.ClearCart()
		if err := h.Sessions.Save(ctx, w, s); err != nil {
			h.serverError(w, r, err)
			return
		}
	}
	h.render(w, r, http.StatusOK, "customer/payment_status.html", res)
}

type ordersPage struct {
	Orders []order.Order
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	orders, err := h.OrderSvc.ListForCustomer(r.Context(), s.UserID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "customer/orders.html", ordersPage{Orders: orders})
}
