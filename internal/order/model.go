package order

import "github.com/shopspring/decimal"

const (
	StatusPaid = "Paid"

	// DateLayout is the day-granularity format stored in orders.date.
	DateLayout = "2006-01-02"
)

// Order is a purchased line item frozen at checkout. It does not reference
// the product row, so it stays complete after the product is deleted.
// Fields are read-only once constructed.
type Order struct {
	id          int64
	customerID  int64
	productName string
	imagePath   string
	total       decimal.Decimal
	status      string
	date        string
}

func NewOrder(id, customerID int64, productName, imagePath string, total decimal.Decimal, status, date string) Order {
	return Order{
		id:          id,
		customerID:  customerID,
		productName: productName,
		imagePath:   imagePath,
		total:       total,
		status:      status,
		date:        date,
	}
}

func (o Order) ID() int64              { return o.id }
func (o Order) CustomerID() int64      { return o.customerID }
func (o Order) ProductName() string    { return o.productName }
func (o Order) ImagePath() string      { return o.imagePath }
func (o Order) Total() decimal.Decimal { return o.total }
func (o Order) Status() string         { return o.status }
func (o Order) Date() string           { return o.date }
