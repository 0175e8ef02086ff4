package domain

import (
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

// ProductInOrder is one requested (product, quantity) pair. It only lives
// for the duration of a single placement request.
type ProductInOrder struct {
	ProductID int64
	Quantity  int
}

// ProductStatus is the validation result for one requested product: the
// resolved record (nil when unknown) and whether stock covers the quantity.
type ProductStatus struct {
	ProductID int64
	Quantity  int
	Product   *productDomain.Product
	InStock   bool
}

// DeliveryReference is the outcome of a confirmation email. Transports that
// expose a preview or tracking link set URL; others just acknowledge.
type DeliveryReference struct {
	URL          string
	Acknowledged bool
}
