package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	customerDomain "github.com/commercekit/orderflow/internal/customer/domain"
	"github.com/commercekit/orderflow/internal/order/domain"
	"github.com/commercekit/orderflow/pkg/tracing"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// Create inserts the order and its OrderPlaced outbox row in one
// transaction, so the event exists iff the order does.
func (r *Repository) Create(ctx context.Context, customer customerDomain.Customer, installments int) (domain.Order, error) {
	o := domain.Order{
		Customer:     customer,
		Installments: installments,
		Status:       domain.StatusApproved,
		PlacedAt:     time.Now().UTC(),
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Order{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, installments, status, placed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		customer.ID, installments, o.Status, o.PlacedAt).Scan(&o.ID)
	if err != nil {
		return domain.Order{}, err
	}

	payload, err := json.Marshal(domain.OrderPlaced{
		OrderID:      o.ID,
		CustomerID:   customer.ID,
		Installments: installments,
	})
	if err != nil {
		return domain.Order{}, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, traceparent, status)
		VALUES ('order', $1, 'OrderPlaced', $2, $3, 'pending')`,
		strconv.FormatInt(o.ID, 10), payload, tracing.Traceparent(ctx))
	if err != nil {
		return domain.Order{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT o.id, o.installments, o.status, o.placed_at, c.id, c.name, c.email
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`, id).
		Scan(&o.ID, &o.Installments, &o.Status, &o.PlacedAt,
			&o.Customer.ID, &o.Customer.Name, &o.Customer.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
