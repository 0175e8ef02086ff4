package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/commercekit/orderflow/internal/order/domain"
)

type LineRepository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewLineRepository(log *slog.Logger, pool *pgxpool.Pool) *LineRepository {
	return &LineRepository{log: log, pool: pool}
}

func (r *LineRepository) Create(ctx context.Context, order domain.Order, statuses []domain.ProductStatus) error {
	batch := &pgx.Batch{}
	for _, st := range statuses {
		batch.Queue(`
			INSERT INTO order_lines (order_id, product_id, quantity)
			VALUES ($1, $2, $3)`,
			order.ID, st.ProductID, st.Quantity)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *LineRepository) FindByOrder(ctx context.Context, order domain.Order) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, l.order_id, l.quantity,
		       p.id, p.name, p.image, p.description, p.weight_kg, p.price_cents, p.stock_qty
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = $1
		ORDER BY l.id`, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		p := &line.Product
		if err := rows.Scan(&line.ID, &line.OrderID, &line.Quantity,
			&p.ID, &p.Name, &p.Image, &p.Description, &p.WeightKg, &p.PriceCents, &p.StockQty); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
