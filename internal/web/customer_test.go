package web

import (
	"net/http"
	"strings"
	"testing"

	"multivendor-shop/internal/cart"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	getProductQuery = `SELECT id, name, category, price, image_path, COALESCE\(vendor_id, 0\) FROM products WHERE id = \$1`
	lookupQuery     = `SELECT name, image_path, price FROM products WHERE id = \$1`
	insertOrder     = `INSERT INTO orders`
)

func TestCustomerDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`FROM products ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(2, "Kindle", "books", "89.50", "k.jpg", 3).
			AddRow(1, "Pixel", "mobiles", "499.00", "p.jpg", 3))

	rec := env.get("/customer/dashboard", env.login(t, customerSession()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Less(t, strings.Index(body, "Kindle"), strings.Index(body, "Pixel"))
	assert.Contains(t, body, "womens_fashions")
	assert.Contains(t, body, "89.50")
}

func TestCustomerDashboard_RequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/customer/dashboard", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestProductsByCategory(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`FROM products WHERE category = \$1`).
		WithArgs("laptops").
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "ThinkPad", "laptops", "999.99", "t.jpg", 2))

	rec := env.get("/products/laptops", env.login(t, vendorSession()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ThinkPad")
}

func TestProductDetail(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, customerSession())

	t.Run("Found", func(t *testing.T) {
		env.mock.ExpectQuery(getProductQuery).WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(7, "Pixel", "mobiles", "499.00", "p.jpg", 2))

		rec := env.get("/product/7", cookie)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pixel")
	})

	t.Run("Missing", func(t *testing.T) {
		env.mock.ExpectQuery(getProductQuery).WithArgs(int64(8)).WillReturnRows(sqlmock.NewRows(productCols))

		rec := env.get("/product/8", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad Id", func(t *testing.T) {
		rec := env.get("/product/abc", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`WHERE name ILIKE \$1 OR category ILIKE \$1`).
		WithArgs("%lapto%").
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "ThinkPad", "laptops", "999.99", "t.jpg", 2))

	rec := env.get("/search?query=lapto", env.login(t, customerSession()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ThinkPad")
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestAddToCart(t *testing.T) {
	env := newTestEnv(t)
	s := customerSession()
	cookie := env.login(t, s)

	for i := 0; i < 2; i++ {
		rec := env.postForm("/cart/add/4", nil, cookie)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/customer/dashboard", rec.Header().Get("Location"))
	}

	// repeated adds keep duplicates; ids are not checked against the catalog
	assert.Equal(t, cart.Cart{4, 4}, env.loadSession(t, s.ID).Cart)
	assert.NoError(t, env.mock.ExpectationsWereMet())
}

func TestAddToCart_Guards(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Vendor Forbidden", func(t *testing.T) {
		rec := env.postForm("/cart/add/4", nil, env.login(t, vendorSession()))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Bad Id", func(t *testing.T) {
		rec := env.postForm("/cart/add/-3", nil, env.login(t, customerSession()))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartView_SkipsDeletedProducts(t *testing.T) {
	env := newTestEnv(t)
	s := customerSession()
	s.Cart = cart.Cart{1, 99, 1}
	cookie := env.login(t, s)

	env.mock.ExpectQuery(getProductQuery).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Pixel", "mobiles", "10.25", "p.jpg", 2))
	env.mock.ExpectQuery(getProductQuery).WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows(productCols))
	env.mock.ExpectQuery(getProductQuery).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Pixel", "mobiles", "10.25", "p.jpg", 2))

	rec := env.get("/cart", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total: ₹20.50")
	// the dangling id stays in the stored cart
	assert.Equal(t, cart.Cart{1, 99, 1}, env.loadSession(t, s.ID).Cart)
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	s := customerSession()
	s.Cart = cart.Cart{1}
	env.mock.ExpectQuery(getProductQuery).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "Pixel", "mobiles", "499", "p.jpg", 2))

	rec := env.get("/checkout", env.login(t, s))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "₹499.00")
}

func TestPaymentStatus(t *testing.T) {
	lookupCols := []string{"name", "image_path", "price"}

	t.Run("Success Commits Each Cart Line And Clears Cart", func(t *testing.T) {
		env := newTestEnv(t)
		s := customerSession()
		s.Cart = cart.Cart{1, 2}
		cookie := env.login(t, s)

		env.mock.ExpectBegin()
		env.mock.ExpectQuery(lookupQuery).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(lookupCols).AddRow("Pixel", "p.jpg", "499.00"))
		env.mock.ExpectQuery(insertOrder).
			WithArgs(int64(5), "Pixel", "p.jpg", sqlmock.AnyArg(), "Paid", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		env.mock.ExpectQuery(lookupQuery).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(lookupCols).AddRow("Kindle", "k.jpg", "89.50"))
		env.mock.ExpectQuery(insertOrder).
			WithArgs(int64(5), "Kindle", "k.jpg", sqlmock.AnyArg(), "Paid", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		env.mock.ExpectCommit()

		rec := env.get("/payment_status/success", cookie)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 item(s) ordered")
		assert.Nil(t, env.loadSession(t, s.ID).Cart)
		assert.NoError(t, env.mock.ExpectationsWereMet())
	})

	t.Run("Success Without Cart Does Nothing", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.get("/payment_status/success", env.login(t, customerSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "0 item(s) ordered")
		assert.NoError(t, env.mock.ExpectationsWereMet())
	})

	t.Run("Failure Keeps Cart", func(t *testing.T) {
		env := newTestEnv(t)
		s := customerSession()
		s.Cart = cart.Cart{1}

		rec := env.get("/payment_status/failed", env.login(t, s))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Your cart has been kept.")
		assert.Equal(t, cart.Cart{1}, env.loadSession(t, s.ID).Cart)
	})

	t.Run("Commit Failure Returns 500 And Keeps Cart", func(t *testing.T) {
		env := newTestEnv(t)
		s := customerSession()
		s.Cart = cart.Cart{1}

		env.mock.ExpectBegin()
		env.mock.ExpectQuery(lookupQuery).WillReturnError(assert.AnError)
		env.mock.ExpectRollback()

		rec := env.get("/payment_status/success", env.login(t, s))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, cart.Cart{1}, env.loadSession(t, s.ID).Cart)
	})

	t.Run("Admin Forbidden", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.get("/payment_status/success", env.login(t, adminSession()))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOrders(t *testing.T) {
	env := newTestEnv(t)
	env.mock.ExpectQuery(`FROM orders\s+WHERE customer_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "product_name", "image_path", "total", "status", "date"}).
			AddRow(10, 5, "Pixel", "p.jpg", "499.00", "Paid", "2026-10-19"))

	rec := env.get("/orders", env.login(t, customerSession()))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Pixel")
	assert.Contains(t, body, "2026-10-19")
	assert.Contains(t, body, "Paid")
}

func TestProfile(t *testing.T) {
	byID := `SELECT id, username, password, role FROM users WHERE id = \$1`

	t.Run("Shows Account", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery(byID).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(2, "victor", "h", "vendor"))

		rec := env.get("/profile", env.login(t, vendorSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account #2")
	})

	t.Run("Deleted User Logged Out", func(t *testing.T) {
		env := newTestEnv(t)
		s := vendorSession()
		env.mock.ExpectQuery(byID).WithArgs(int64(2)).WillReturnRows(sqlmock.NewRows(userCols))

		rec := env.get("/profile", env.login(t, s))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Nil(t, env.loadSession(t, s.ID))
	})
}
