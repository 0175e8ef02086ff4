package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/commercekit/orderflow/internal/order/application"
	"github.com/commercekit/orderflow/internal/order/domain"
	productDomain "github.com/commercekit/orderflow/internal/product/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/orders", h.placeOrder)
	r.Get("/orders/{id}", h.getOrder)
	return r
}

type productInOrderReq struct {
	ID  int64 `json:"id"`
	Qtt int   `json:"qtt"`
}

type placeOrderReq struct {
	IDCustomer   int64               `json:"idCustomer"`
	Installment  int                 `json:"installment"`
	ListProducts []productInOrderReq `json:"listProducts"`
}

type customerResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type orderResp struct {
	ID          int64        `json:"id"`
	Customer    customerResp `json:"customer"`
	Installment int          `json:"installment"`
	Status      string       `json:"status"`
	DtOrder     time.Time    `json:"dtOrder"`
}

type productResp struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	QttStock int    `json:"qttStock"`
}

type placeOrderResp struct {
	Order        orderResp     `json:"order"`
	Products     []productResp `json:"products"`
	TestEmailURL string        `json:"testEmailUrl"`
}

type lineResp struct {
	ID       int64       `json:"id"`
	Product  productResp `json:"product"`
	Quantity int         `json:"qtt"`
}

type getOrderResp struct {
	Order orderResp  `json:"order"`
	Lines []lineResp `json:"lines"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if len(req.ListProducts) == 0 {
		writeError(w, http.StatusBadRequest, "listProducts must not be empty")
		return
	}

	products := make([]domain.ProductInOrder, 0, len(req.ListProducts))
	for _, p := range req.ListProducts {
		products = append(products, domain.ProductInOrder{ProductID: p.ID, Quantity: p.Qtt})
	}

	res, err := h.service.PlaceOrder(ctx, application.PlaceOrderRequest{
		CustomerID:   req.IDCustomer,
		Installments: req.Installment,
		Products:     products,
	})
	if err != nil {
		h.log.Error("place order failed", "customer_id", req.IDCustomer, "err", err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := placeOrderResp{
		Order:        toOrderResp(res.Order),
		Products:     make([]productResp, 0, len(res.Products)),
		TestEmailURL: res.EmailPreviewURL,
	}
	for _, p := range res.Products {
		resp.Products = append(resp.Products, toProductResp(p))
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, lines, err := h.service.GetOrder(ctx, id)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	resp := getOrderResp{Order: toOrderResp(order), Lines: make([]lineResp, 0, len(lines))}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, lineResp{
			ID:       line.ID,
			Product:  toProductResp(line.Product),
			Quantity: line.Quantity,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toOrderResp(o domain.Order) orderResp {
	return orderResp{
		ID:          o.ID,
		Customer:    customerResp{ID: o.Customer.ID, Name: o.Customer.Name},
		Installment: o.Installments,
		Status:      string(o.Status),
		DtOrder:     o.PlacedAt,
	}
}

func toProductResp(p productDomain.Product) productResp {
	return productResp{ID: p.ID, Name: p.Name, QttStock: p.StockQty}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrCustomerNotFound),
		errors.Is(err, application.ErrProductNotFound),
		errors.Is(err, application.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrOutOfStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
