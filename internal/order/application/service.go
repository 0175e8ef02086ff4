package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	customerDomain "github.com/commercekit/orderflow/internal/customer/domain"
	"github.com/commercekit/orderflow/internal/order/domain"
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("out of stock")
	ErrOrderNotFound    = errors.New("order not found")
)

type PlaceOrderRequest struct {
	CustomerID   int64
	Installments int
	Products     []domain.ProductInOrder
}

type PlaceOrderResult struct {
	Order domain.Order
	// Products are the records referenced by the order's persisted lines,
	// re-read after the stock decrement.
	Products        []productDomain.Product
	EmailPreviewURL string
}

type Service struct {
	log       *slog.Logger
	orders    OrderRepository
	lines     OrderLineRepository
	products  ProductRepository
	customers CustomerRepository
	mail      MailSender
}

func NewService(
	log *slog.Logger,
	orders OrderRepository,
	lines OrderLineRepository,
	products ProductRepository,
	customers CustomerRepository,
	mail MailSender,
) *Service {
	return &Service{
		log:       log,
		orders:    orders,
		lines:     lines,
		products:  products,
		customers: customers,
		mail:      mail,
	}
}

// PlaceOrder validates the whole request before touching anything: the
// customer must exist and every requested product must be known and have
// stock covering its quantity. Only then the order is persisted, a
// confirmation email is sent (best-effort), stock is decremented and one
// line per requested product is recorded.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (PlaceOrderResult, error) {
	customer, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if customer == nil {
		return PlaceOrderResult{}, fmt.Errorf("customer %d: %w", req.CustomerID, ErrCustomerNotFound)
	}

	ids := make([]int64, 0, len(req.Products))
	for _, p := range req.Products {
		ids = append(ids, p.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	statuses := make([]domain.ProductStatus, 0, len(req.Products))
	for _, p := range req.Products {
		statuses = append(statuses, productStatus(p, products))
	}
	// All statuses are resolved before the scan; the first problem found
	// aborts the request, and no mutation has happened yet.
	for _, st := range statuses {
		if st.Product == nil {
			return PlaceOrderResult{}, fmt.Errorf("product %d: %w", st.ProductID, ErrProductNotFound)
		}
		if !st.InStock {
			return PlaceOrderResult{}, fmt.Errorf("product %q: %w", st.Product.Name, ErrOutOfStock)
		}
	}

	order, err := s.orders.Create(ctx, *customer, req.Installments)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	ref := s.sendConfirmation(ctx, *customer, order)

	if err := s.products.UpdateStock(ctx, statuses); err != nil {
		return PlaceOrderResult{}, err
	}
	if err := s.lines.Create(ctx, order, statuses); err != nil {
		return PlaceOrderResult{}, err
	}
	fetched, err := s.lines.FindByOrder(ctx, order)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	result := PlaceOrderResult{Order: order, EmailPreviewURL: ref.URL}
	for _, line := range fetched {
		result.Products = append(result.Products, line.Product)
	}
	return result, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (domain.Order, []domain.OrderLine, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if order == nil {
		return domain.Order{}, nil, fmt.Errorf("order %d: %w", id, ErrOrderNotFound)
	}
	lines, err := s.lines.FindByOrder(ctx, *order)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return *order, lines, nil
}

// StockAvailable reports whether the product exists and its stock covers
// qty. Stock exactly equal to qty is still available.
func StockAvailable(qty int, product *productDomain.Product) bool {
	if product == nil {
		return false
	}
	return product.StockQty >= qty
}

func productStatus(req domain.ProductInOrder, products []productDomain.Product) domain.ProductStatus {
	var match *productDomain.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			match = &products[i]
			break
		}
	}
	return domain.ProductStatus{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Product:   match,
		InStock:   StockAvailable(req.Quantity, match),
	}
}

// sendConfirmation is best-effort: a template or transport failure is
// logged and the placement continues with an empty reference.
func (s *Service) sendConfirmation(ctx context.Context, customer customerDomain.Customer, order domain.Order) domain.DeliveryReference {
	var body bytes.Buffer
	err := confirmationTmpl.Execute(&body, confirmationData{Name: customer.Name, OrderID: order.ID})
	if err != nil {
		s.log.Error("confirmation body render failed", "order_id", order.ID, "err", err)
		return domain.DeliveryReference{}
	}

	subject := fmt.Sprintf("Order confirmation number #%d", order.ID)
	ref, err := s.mail.Send(ctx, customer.Email, subject, body.String())
	if err != nil {
		s.log.Error("confirmation email failed", "order_id", order.ID, "to", customer.Email, "err", err)
		return domain.DeliveryReference{}
	}
	return ref
}
