package web

import (
	"net/http"

	"multivendor-shop/internal/middleware"
	"multivendor-shop/internal/user"
)

// Routes registers every page on mux. Session loading, logging and rate
// limiting are applied by the caller around the whole mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	vendor := middleware.RequireRole(user.RoleVendor)
	customer := middleware.RequireRole(user.RoleCustomer)
	adminOnly := middleware.RequireRole(user.RoleAdmin)
	authed := middleware.RequireAuth

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /{$}", h.Home)

	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /register", h.RegisterPage)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.Handle("GET /vendor/dashboard", vendor(http.HandlerFunc(h.VendorDashboard)))
	mux.Handle("GET /vendor/products", vendor(http.HandlerFunc(h.VendorDashboard)))
	mux.Handle("GET /vendor/add", vendor(http.HandlerFunc(h.AddProductPage)))
	mux.Handle("POST /vendor/add", vendor(http.HandlerFunc(h.AddProduct)))
	mux.Handle("POST /vendor/delete/{id}", vendor(http.HandlerFunc(h.DeleteProduct)))

	mux.Handle("GET /customer/dashboard", authed(http.HandlerFunc(h.CustomerDashboard)))
	mux.Handle("GET /products/{category}", authed(http.HandlerFunc(h.ProductsByCategory)))
	mux.Handle("GET /product/{id}", authed(http.HandlerFunc(h.ProductDetail)))
	mux.Handle("GET /search", authed(http.HandlerFunc(h.Search)))
	mux.Handle("GET /profile", authed(http.HandlerFunc(h.Profile)))

	mux.Handle("POST /cart/add/{id}", customer(http.HandlerFunc(h.AddToCart)))
	mux.Handle("GET /cart", customer(http.HandlerFunc(h.Cart)))
	mux.Handle("GET /checkout", customer(http.HandlerFunc(h.Checkout)))
	mux.Handle("GET /payment_status/{status}", customer(http.HandlerFunc(h.PaymentStatus)))
	mux.Handle("GET /orders", customer(http.HandlerFunc(h.Orders)))

	mux.Handle("GET /admin/dashboard", adminOnly(http.HandlerFunc(h.AdminDashboard)))
	mux.Handle("GET /admin/customers", adminOnly(http.HandlerFunc(h.AdminCustomers)))
	mux.Handle("GET /admin/products", adminOnly(http.HandlerFunc(h.AdminProducts)))
	mux.Handle("GET /admin/categories", adminOnly(http.HandlerFunc(h.AdminCategories)))
}
