package web

import (
	"net/http"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/user"
)

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.AdminSvc.Dashboard(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin/dashboard.html", d)
}

type usersPage struct {
	Users []*user.User
}

func (h *Handler) AdminCustomers(w http.ResponseWriter, r *http.Request) {
	users, err := h.AdminSvc.Customers(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin/customers.html", usersPage{Users: users})
}

func (h *Handler) AdminProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.AdminSvc.Products(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin/products.html", productList{Products: products})
}

type categoriesPage struct {
	Categories []category.Count
}

func (h *Handler) AdminCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.AdminSvc.Categories(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "admin/categories.html", categoriesPage{Categories: counts})
}
