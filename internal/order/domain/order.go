package domain

import (
	"time"

	customerDomain "github.com/commercekit/orderflow/internal/customer/domain"
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

type OrderStatus string

const (
	StatusApproved OrderStatus = "approved"
	StatusCanceled OrderStatus = "canceled"
)

type Order struct {
	ID           int64
	Customer     customerDomain.Customer
	Installments int
	Status       OrderStatus
	PlacedAt     time.Time
}

// OrderLine links an order to one purchased product and its quantity.
type OrderLine struct {
	ID       int64
	OrderID  int64
	Product  productDomain.Product
	Quantity int
}
