package web

import (
	"errors"
	"net/http"

	"multivendor-shop/internal/category"
	"multivendor-shop/internal/product"
	"multivendor-shop/internal/session"
	"multivendor-shop/internal/utils"
)

type productList struct {
	Products []*product.Product
}

func (h *Handler) VendorDashboard(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())

	products, err := h.ProductSvc.ListByVendor(r.Context(), s.UserID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "vendor/dashboard.html", productList{Products: products})
}

type productForm struct {
	Categories []category.Category
	Input      product.CreateProductInput
}

func (h *Handler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "vendor/add_product.html", productForm{Categories: category.All()})
}

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	input := product.CreateProductInput{
		Name:      r.PostFormValue("name"),
		Category:  r.PostFormValue("category"),
		Price:     r.PostFormValue("price"),
		ImagePath: r.PostFormValue("image_path"),
	}

	_, err := h.ProductSvc.Create(ctx, s.UserID, input)
	switch {
	case err == nil:
		h.redirect(w, r, s, "/vendor/dashboard")
	case errors.Is(err, product.ErrInvalidName),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, category.ErrInvalidCategory):
		s.AddFlash(err.Error())
		h.render(w, r, http.StatusUnprocessableEntity, "vendor/add_product.html",
			productForm{Categories: category.All(), Input: input})
	default:
		h.serverError(w, r, err)
	}
}

// DeleteProduct removes the product only when the acting vendor owns it;
// any other id is a no-op.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := session.FromContext(ctx)

	id, err := utils.ParseID(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	deleted, err := h.ProductSvc.Delete(ctx, id, s.UserID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if deleted {
		s.AddFlash("Product deleted.")
	}
	h.redirect(w, r, s, "/vendor/dashboard")
}
