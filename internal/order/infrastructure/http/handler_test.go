package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerDomain "github.com/commercekit/orderflow/internal/customer/domain"
	"github.com/commercekit/orderflow/internal/order/application"
	"github.com/commercekit/orderflow/internal/order/domain"
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

type stubCustomerRepo struct{ customer *customerDomain.Customer }

func (s *stubCustomerRepo) FindByID(ctx context.Context, id int64) (*customerDomain.Customer, error) {
	if s.customer != nil && s.customer.ID == id {
		return s.customer, nil
	}
	return nil, nil
}

type stubProductRepo struct{ products []productDomain.Product }

func (s *stubProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]productDomain.Product, error) {
	var out []productDomain.Product
	for _, id := range ids {
		for _, p := range s.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (s *stubProductRepo) UpdateStock(ctx context.Context, statuses []domain.ProductStatus) error {
	for _, st := range statuses {
		for i := range s.products {
			if s.products[i].ID == st.ProductID {
				s.products[i].StockQty -= st.Quantity
			}
		}
	}
	return nil
}

type stubOrderRepo struct{ orders []domain.Order }

func (s *stubOrderRepo) Create(ctx context.Context, customer customerDomain.Customer, installments int) (domain.Order, error) {
	o := domain.Order{
		ID:           int64(len(s.orders) + 1),
		Customer:     customer,
		Installments: installments,
		Status:       domain.StatusApproved,
	}
	s.orders = append(s.orders, o)
	return o, nil
}

func (s *stubOrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, nil
}

type stubLine struct {
	orderID   int64
	productID int64
	quantity  int
}

type stubLineRepo struct {
	products *stubProductRepo
	lines    []stubLine
}

func (s *stubLineRepo) Create(ctx context.Context, order domain.Order, statuses []domain.ProductStatus) error {
	for _, st := range statuses {
		s.lines = append(s.lines, stubLine{orderID: order.ID, productID: st.ProductID, quantity: st.Quantity})
	}
	return nil
}

func (s *stubLineRepo) FindByOrder(ctx context.Context, order domain.Order) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	for i, line := range s.lines {
		if line.orderID != order.ID {
			continue
		}
		var product productDomain.Product
		for _, p := range s.products.products {
			if p.ID == line.productID {
				product = p
			}
		}
		out = append(out, domain.OrderLine{
			ID:       int64(i + 1),
			OrderID:  line.orderID,
			Product:  product,
			Quantity: line.quantity,
		})
	}
	return out, nil
}

type stubMail struct{ ref domain.DeliveryReference }

func (s *stubMail) Send(ctx context.Context, to, subject, htmlBody string) (domain.DeliveryReference, error) {
	return s.ref, nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	products := &stubProductRepo{products: []productDomain.Product{
		{ID: 1, Name: "Notebook Acer Nitro 5", StockQty: 10},
		{ID: 2, Name: "Notebook Acer Nitro 6", StockQty: 10},
	}}
	svc := application.NewService(
		log,
		&stubOrderRepo{},
		&stubLineRepo{products: products},
		products,
		&stubCustomerRepo{customer: &customerDomain.Customer{ID: 1, Name: "Delviniano Albernás", Email: "delv@alb.com"}},
		&stubMail{ref: domain.DeliveryReference{URL: "https://ethereal.email/message/abc"}},
	)
	return NewHandler(log, svc).Routes()
}

func TestPlaceOrderEndpoint_Created(t *testing.T) {
	h := newTestHandler(t)

	body := `{"idCustomer":1,"installment":3,"listProducts":[{"id":1,"qtt":2},{"id":2,"qtt":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp placeOrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Order.ID)
	assert.Equal(t, "approved", resp.Order.Status)
	assert.Equal(t, 3, resp.Order.Installment)
	assert.Equal(t, "Delviniano Albernás", resp.Order.Customer.Name)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, 8, resp.Products[0].QttStock)
	assert.Equal(t, "https://ethereal.email/message/abc", resp.TestEmailURL)
}

func TestPlaceOrderEndpoint_UnknownCustomer(t *testing.T) {
	h := newTestHandler(t)

	body := `{"idCustomer":99,"installment":1,"listProducts":[{"id":1,"qtt":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer")
}

func TestPlaceOrderEndpoint_OutOfStock(t *testing.T) {
	h := newTestHandler(t)

	body := `{"idCustomer":1,"installment":1,"listProducts":[{"id":1,"qtt":12}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "out of stock")
}

func TestPlaceOrderEndpoint_BadBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"idCustomer":`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := `{"idCustomer":1,"installment":1,"listProducts":[{"id":1,"qtt":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp getOrderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Order.ID)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)

	req = httptest.NewRequest(http.MethodGet, "/orders/404", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
