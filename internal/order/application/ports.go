package application

import (
	"context"

	customerDomain "github.com/commercekit/orderflow/internal/customer/domain"
	"github.com/commercekit/orderflow/internal/order/domain"
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

type CustomerRepository interface {
	// FindByID returns nil without error when no customer matches.
	FindByID(ctx context.Context, id int64) (*customerDomain.Customer, error)
}

type ProductRepository interface {
	// FindByIDs returns only matching products, in no guaranteed order.
	FindByIDs(ctx context.Context, ids []int64) ([]productDomain.Product, error)
	// UpdateStock decrements each matched product's stock by the quantity
	// recorded in its status.
	UpdateStock(ctx context.Context, statuses []domain.ProductStatus) error
}

type OrderRepository interface {
	Create(ctx context.Context, customer customerDomain.Customer, installments int) (domain.Order, error)
	// Get returns nil without error when no order matches.
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

type OrderLineRepository interface {
	Create(ctx context.Context, order domain.Order, statuses []domain.ProductStatus) error
	// FindByOrder returns the order's lines, each carrying its product.
	FindByOrder(ctx context.Context, order domain.Order) ([]domain.OrderLine, error)
}

type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) (domain.DeliveryReference, error)
}
